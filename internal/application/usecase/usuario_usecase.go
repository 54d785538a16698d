package usecase

import (
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

// UsuarioUseCase listado y consulta de usuarios de la clínica. El registro y
// el login viven en el paquete auth; aquí solo lo que necesita la app para
// poblar el selector de usuarios asignables.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// GetByID obtiene un usuario, validando pertenencia a la clínica.
func (uc *UsuarioUseCase) GetByID(clinicaID, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	return toUsuarioResponse(u), nil
}

// List lista los usuarios de la clínica con paginación.
func (uc *UsuarioUseCase) List(clinicaID string, limit, offset int) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.ListByClinica(clinicaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		ClinicaID: u.ClinicaID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
