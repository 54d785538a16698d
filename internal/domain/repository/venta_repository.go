package repository

import "github.com/vetcare-cu/veterinaria-api/internal/domain/entity"

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Create(v *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	ListByConsulta(consultaID string) ([]*entity.Venta, error)
	ListByClinica(clinicaID string, limit, offset int) ([]*entity.Venta, error)
	// ReplaceByConsulta borra y reinserta las filas de una consulta en una sola
	// operación (modo edición: actualización masiva).
	ReplaceByConsulta(consultaID string, ventas []*entity.Venta) error
	Delete(id string) error
}
