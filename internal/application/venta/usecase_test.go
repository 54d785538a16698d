package venta_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/application/venta"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/billing"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
)

const clinicaTest = "clinica-1"

type fakeComerciableRepo struct {
	porID map[string]*entity.Comerciable
}

func (f *fakeComerciableRepo) Create(*entity.Comerciable) error { return nil }
func (f *fakeComerciableRepo) GetByID(id string) (*entity.Comerciable, error) {
	return f.porID[id], nil
}
func (f *fakeComerciableRepo) Update(*entity.Comerciable) error { return nil }
func (f *fakeComerciableRepo) ListByClinica(string, string, int, int) ([]*entity.Comerciable, error) {
	return nil, nil
}
func (f *fakeComerciableRepo) Search(string, string, string, int) ([]*entity.Comerciable, error) {
	return nil, nil
}
func (f *fakeComerciableRepo) Delete(string) error { return nil }

type fakeUsuarioRepo struct{}

func (f *fakeUsuarioRepo) Create(*entity.Usuario) error { return nil }
func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return &entity.Usuario{ID: id, ClinicaID: clinicaTest}, nil
}
func (f *fakeUsuarioRepo) GetByEmailAndClinica(string, string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) Update(*entity.Usuario) error { return nil }
func (f *fakeUsuarioRepo) ListByClinica(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarioRepo) Delete(string) error                         { return nil }
func (f *fakeUsuarioRepo) FindByEmail(string) (*entity.Usuario, error) { return nil, nil }

type fakeVentaRepo struct{ creadas []*entity.Venta }

func (f *fakeVentaRepo) Create(v *entity.Venta) error          { f.creadas = append(f.creadas, v); return nil }
func (f *fakeVentaRepo) GetByID(string) (*entity.Venta, error) { return nil, nil }
func (f *fakeVentaRepo) ListByConsulta(string) ([]*entity.Venta, error) { return nil, nil }
func (f *fakeVentaRepo) ListByClinica(string, int, int) ([]*entity.Venta, error) {
	return nil, nil
}
func (f *fakeVentaRepo) ReplaceByConsulta(string, []*entity.Venta) error { return nil }
func (f *fakeVentaRepo) Delete(string) error                             { return nil }

func nuevoUseCase(comerciables ...*entity.Comerciable) (*venta.UseCase, *fakeVentaRepo) {
	porID := make(map[string]*entity.Comerciable, len(comerciables))
	for _, c := range comerciables {
		porID[c.ID] = c
	}
	ventaRepo := &fakeVentaRepo{}
	return venta.NewUseCase(&fakeComerciableRepo{porID: porID}, &fakeUsuarioRepo{}, ventaRepo), ventaRepo
}

func dtoVenta(comerciableID, precio, cantidad, metodoPago string) dto.CreateVentaRequest {
	return dto.CreateVentaRequest{
		ComerciableID: comerciableID,
		Fecha:         "2026-08-28",
		PrecioCUP:     precio,
		Cantidad:      cantidad,
		MetodoPago:    metodoPago,
		UsuarioIDs:    []string{"vet-1"},
	}
}

func filaDePrueba(comerciableID string) *billing.LineItem {
	return &billing.LineItem{
		ID:             "r1",
		ComerciableID:  comerciableID,
		Seleccionado:   comerciableID != "",
		PrecioUnitario: decimal.NewFromInt(100),
		Cantidad:       decimal.NewFromInt(1),
	}
}

func TestValidarFila_SinSeleccion(t *testing.T) {
	uc, _ := nuevoUseCase()
	err := uc.ValidarFila(context.Background(), clinicaTest, filaDePrueba(""), []string{"vet-1"})

	var ec *domain.ErrorCampo
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, "comerciable", ec.Campo)
}

func TestValidarFila_CantidadNoPositiva(t *testing.T) {
	uc, _ := nuevoUseCase()
	fila := filaDePrueba("com-1")
	fila.Cantidad = decimal.Zero
	err := uc.ValidarFila(context.Background(), clinicaTest, fila, []string{"vet-1"})

	var ec *domain.ErrorCampo
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, "cantidad", ec.Campo)
}

func TestValidarFila_ComerciableDeOtraClinica(t *testing.T) {
	uc, _ := nuevoUseCase(&entity.Comerciable{ID: "com-1", ClinicaID: "otra", Activo: true})
	err := uc.ValidarFila(context.Background(), clinicaTest, filaDePrueba("com-1"), []string{"vet-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidarFila_ComerciableInactivo(t *testing.T) {
	uc, _ := nuevoUseCase(&entity.Comerciable{ID: "com-1", ClinicaID: clinicaTest, Activo: false})
	err := uc.ValidarFila(context.Background(), clinicaTest, filaDePrueba("com-1"), []string{"vet-1"})

	var ec *domain.ErrorCampo
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, "comerciable", ec.Campo)
}

// El costo canónico se resuelve una sola vez en la validación: costo de
// catálogo si existe, si no el precio de venta del comerciable.
func TestValidarFila_NormalizaCosto(t *testing.T) {
	uc, _ := nuevoUseCase(&entity.Comerciable{
		ID: "com-1", ClinicaID: clinicaTest, Activo: true,
		Costo: decimal.NewFromInt(30), PrecioCUP: decimal.NewFromInt(80),
	})
	fila := filaDePrueba("com-1")
	require.NoError(t, uc.ValidarFila(context.Background(), clinicaTest, fila, []string{"vet-1"}))
	assert.True(t, fila.CostoOriginal.Equal(decimal.NewFromInt(30)))

	uc2, _ := nuevoUseCase(&entity.Comerciable{
		ID: "com-2", ClinicaID: clinicaTest, Activo: true,
		PrecioCUP: decimal.NewFromInt(80),
	})
	fila2 := filaDePrueba("com-2")
	require.NoError(t, uc2.ValidarFila(context.Background(), clinicaTest, fila2, []string{"vet-1"}))
	assert.True(t, fila2.CostoOriginal.Equal(decimal.NewFromInt(80)),
		"sin costo de catálogo el sustituto es el precio del comerciable")
}

func TestCrear_VentaIndividual(t *testing.T) {
	uc, ventaRepo := nuevoUseCase(&entity.Comerciable{
		ID: "com-1", ClinicaID: clinicaTest, Activo: true,
		Costo: decimal.NewFromInt(10), PrecioCUP: decimal.NewFromInt(25),
	})

	resp, err := uc.Crear(context.Background(), clinicaTest, dtoVenta("com-1", "25", "2", entity.PagoEfectivo))
	require.NoError(t, err)
	require.Len(t, ventaRepo.creadas, 1)
	assert.Empty(t, resp.ConsultaID, "una venta individual no tiene consulta asociada")
	assert.True(t, resp.PrecioCobrado.Equal(decimal.NewFromInt(25)))
}

// El ajuste manual del total también aplica a la venta individual: el precio
// cobrado se recalcula desde el total ajustado, no desde el precio tecleado.
func TestCrear_AjusteManualRecalculaPrecio(t *testing.T) {
	uc, ventaRepo := nuevoUseCase(&entity.Comerciable{
		ID: "com-1", ClinicaID: clinicaTest, Activo: true,
		Costo: decimal.NewFromInt(10), PrecioCUP: decimal.NewFromInt(25),
	})

	in := dtoVenta("com-1", "25", "2", entity.PagoEfectivo)
	in.AjusteDelta = "10"
	in.AjusteTotalOriginal = "50"

	resp, err := uc.Crear(context.Background(), clinicaTest, in)
	require.NoError(t, err)
	require.Len(t, ventaRepo.creadas, 1)
	assert.True(t, resp.PrecioCobrado.Equal(decimal.NewFromInt(30)),
		"con total ajustado 60 y cantidad 2 el precio cobrado debe ser 30, fue %s", resp.PrecioCobrado)
}

func TestCrear_AjusteObsoletoSeIgnora(t *testing.T) {
	uc, _ := nuevoUseCase(&entity.Comerciable{
		ID: "com-1", ClinicaID: clinicaTest, Activo: true,
		Costo: decimal.NewFromInt(10), PrecioCUP: decimal.NewFromInt(25),
	})

	in := dtoVenta("com-1", "25", "2", entity.PagoEfectivo)
	in.AjusteDelta = "10"
	// El operador capturó el delta sobre un total que ya no es el vigente.
	in.AjusteTotalOriginal = "45"

	resp, err := uc.Crear(context.Background(), clinicaTest, in)
	require.NoError(t, err)
	assert.True(t, resp.PrecioCobrado.Equal(decimal.NewFromInt(25)),
		"un ajuste obsoleto se ignora y el precio tecleado se conserva")
}

func TestCrear_MetodoPagoDesconocido(t *testing.T) {
	uc, _ := nuevoUseCase()
	_, err := uc.Crear(context.Background(), clinicaTest, dtoVenta("com-1", "25", "1", "cheque"))

	var ec *domain.ErrorCampo
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, "metodo_pago", ec.Campo)
}
