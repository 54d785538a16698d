package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/application/usecase"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
)

// comerciableRepoEspia registra las búsquedas que le llegan.
type comerciableRepoEspia struct {
	busquedas    int
	ultimoLimite int
}

func (r *comerciableRepoEspia) Create(*entity.Comerciable) error              { return nil }
func (r *comerciableRepoEspia) GetByID(string) (*entity.Comerciable, error)   { return nil, nil }
func (r *comerciableRepoEspia) Update(*entity.Comerciable) error              { return nil }
func (r *comerciableRepoEspia) Delete(string) error                           { return nil }
func (r *comerciableRepoEspia) ListByClinica(string, string, int, int) ([]*entity.Comerciable, error) {
	return nil, nil
}
func (r *comerciableRepoEspia) Search(_, _, _ string, limit int) ([]*entity.Comerciable, error) {
	r.busquedas++
	r.ultimoLimite = limit
	return nil, nil
}

func TestNormalizarTermino(t *testing.T) {
	casos := map[string]string{
		"Vacúna":         "vacuna",
		"  ANTIBIÓTICO ": "antibiotico",
		"peluquería":     "peluqueria",
		"Ñandú":          "nandu",
		"ya normal":      "ya normal",
		"":               "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, usecase.NormalizarTermino(entrada),
			"el término debe quedar en minúsculas y sin acentos")
	}
}

func TestSearch_TerminoVacioNoTocaElRepositorio(t *testing.T) {
	repo := &comerciableRepoEspia{}
	uc := usecase.NewComerciableUseCase(repo)

	out, err := uc.Search("clinica-1", dto.SearchComerciablesRequest{Termino: "   "})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, repo.busquedas, "un término vacío no debe consultar la DB")
}

func TestSearch_LimiteFueraDeRangoUsaElPorDefecto(t *testing.T) {
	repo := &comerciableRepoEspia{}
	uc := usecase.NewComerciableUseCase(repo)

	for _, limite := range []int{0, -5, 51, 1000} {
		_, err := uc.Search("clinica-1", dto.SearchComerciablesRequest{Termino: "vacuna", Limit: limite})
		require.NoError(t, err)
		assert.Equal(t, 10, repo.ultimoLimite)
	}

	_, err := uc.Search("clinica-1", dto.SearchComerciablesRequest{Termino: "vacuna", Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, repo.ultimoLimite, "un límite dentro del rango se respeta")
}

func TestSearch_TipoDesconocido(t *testing.T) {
	uc := usecase.NewComerciableUseCase(&comerciableRepoEspia{})

	_, err := uc.Search("clinica-1", dto.SearchComerciablesRequest{Termino: "vacuna", Tipo: "juguete"})

	var ec *domain.ErrorCampo
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, "tipo", ec.Campo)
}
