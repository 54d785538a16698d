package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// PacienteUseCase casos de uso CRUD para pacientes (mascotas).
type PacienteUseCase struct {
	repo repository.PacienteRepository
}

// NewPacienteUseCase construye el caso de uso.
func NewPacienteUseCase(repo repository.PacienteRepository) *PacienteUseCase {
	return &PacienteUseCase{repo: repo}
}

var cienPorciento = decimal.NewFromInt(100)

// Create registra un paciente. El descuento debe estar en [0, 100].
func (uc *PacienteUseCase) Create(clinicaID string, in dto.CreatePacienteRequest) (*dto.PacienteResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.NuevoErrorCampo("nombre", "el nombre es obligatorio")
	}
	if strings.TrimSpace(in.PropietarioNombre) == "" {
		return nil, domain.NuevoErrorCampo("propietario_nombre", "el propietario es obligatorio")
	}
	if in.DescuentoPorciento.IsNegative() || in.DescuentoPorciento.GreaterThan(cienPorciento) {
		return nil, domain.NuevoErrorCampo("descuento_porciento", "el descuento debe estar entre 0 y 100")
	}
	now := time.Now()
	p := &entity.Paciente{
		ID:                  uuid.New().String(),
		ClinicaID:           clinicaID,
		Nombre:              in.Nombre,
		Especie:             in.Especie,
		Raza:                in.Raza,
		PropietarioNombre:   in.PropietarioNombre,
		PropietarioTelefono: in.PropietarioTelefono,
		DescuentoPorciento:  in.DescuentoPorciento,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPacienteResponse(p), nil
}

// GetByID obtiene un paciente, validando pertenencia a la clínica.
func (uc *PacienteUseCase) GetByID(clinicaID, id string) (*dto.PacienteResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	return toPacienteResponse(p), nil
}

// Update actualiza los datos del paciente, incluido su descuento.
func (uc *PacienteUseCase) Update(clinicaID, id string, in dto.CreatePacienteRequest) (*dto.PacienteResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	if in.DescuentoPorciento.IsNegative() || in.DescuentoPorciento.GreaterThan(cienPorciento) {
		return nil, domain.NuevoErrorCampo("descuento_porciento", "el descuento debe estar entre 0 y 100")
	}
	if strings.TrimSpace(in.Nombre) != "" {
		p.Nombre = in.Nombre
	}
	p.Especie = in.Especie
	p.Raza = in.Raza
	if strings.TrimSpace(in.PropietarioNombre) != "" {
		p.PropietarioNombre = in.PropietarioNombre
	}
	p.PropietarioTelefono = in.PropietarioTelefono
	p.DescuentoPorciento = in.DescuentoPorciento
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPacienteResponse(p), nil
}

// List lista los pacientes de la clínica con paginación.
func (uc *PacienteUseCase) List(clinicaID string, limit, offset int) ([]dto.PacienteResponse, error) {
	list, err := uc.repo.ListByClinica(clinicaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PacienteResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPacienteResponse(p))
	}
	return items, nil
}

// Delete elimina un paciente.
func (uc *PacienteUseCase) Delete(clinicaID, id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.ClinicaID != clinicaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toPacienteResponse(p *entity.Paciente) *dto.PacienteResponse {
	if p == nil {
		return nil
	}
	return &dto.PacienteResponse{
		ID:                  p.ID,
		ClinicaID:           p.ClinicaID,
		Nombre:              p.Nombre,
		Especie:             p.Especie,
		Raza:                p.Raza,
		PropietarioNombre:   p.PropietarioNombre,
		PropietarioTelefono: p.PropietarioTelefono,
		DescuentoPorciento:  p.DescuentoPorciento,
	}
}
