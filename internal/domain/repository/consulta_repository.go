package repository

import "github.com/vetcare-cu/veterinaria-api/internal/domain/entity"

// ConsultaRepository define el puerto de persistencia para Consulta (DIP).
type ConsultaRepository interface {
	Create(c *entity.Consulta) error
	GetByID(id string) (*entity.Consulta, error)
	Update(c *entity.Consulta) error
	ListByPaciente(pacienteID string, limit, offset int) ([]*entity.Consulta, error)
	ListByClinica(clinicaID string, limit, offset int) ([]*entity.Consulta, error)
	Delete(id string) error
}
