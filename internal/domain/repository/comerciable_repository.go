package repository

import "github.com/vetcare-cu/veterinaria-api/internal/domain/entity"

// ComerciableRepository define el puerto de persistencia para Comerciable (DIP).
// Search es el respaldo del autocompletado de la app: recibe el término ya
// normalizado (minúsculas, sin acentos) y un tipo opcional ("" = todos).
type ComerciableRepository interface {
	Create(c *entity.Comerciable) error
	GetByID(id string) (*entity.Comerciable, error)
	Update(c *entity.Comerciable) error
	ListByClinica(clinicaID, tipo string, limit, offset int) ([]*entity.Comerciable, error)
	Search(clinicaID, terminoNormalizado, tipo string, limit int) ([]*entity.Comerciable, error)
	Delete(id string) error
}
