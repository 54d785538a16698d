package repository

import "github.com/vetcare-cu/veterinaria-api/internal/domain/entity"

// PacienteRepository define el puerto de persistencia para Paciente (DIP).
type PacienteRepository interface {
	Create(p *entity.Paciente) error
	GetByID(id string) (*entity.Paciente, error)
	Update(p *entity.Paciente) error
	ListByClinica(clinicaID string, limit, offset int) ([]*entity.Paciente, error)
	Delete(id string) error
}
