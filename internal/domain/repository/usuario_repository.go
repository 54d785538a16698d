package repository

import "github.com/vetcare-cu/veterinaria-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmailAndClinica(email, clinicaID string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	ListByClinica(clinicaID string, limit, offset int) ([]*entity.Usuario, error)
	Delete(id string) error
	// FindByEmail alias semántico para uso en auth.
	FindByEmail(email string) (*entity.Usuario, error)
}
