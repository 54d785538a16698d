package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/vetcare-cu/veterinaria-api/internal/application/dto"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ComerciableUseCase casos de uso CRUD del catálogo de comerciables más la
// búsqueda que respalda el autocompletado de la app.
type ComerciableUseCase struct {
	repo repository.ComerciableRepository
}

// NewComerciableUseCase construye el caso de uso.
func NewComerciableUseCase(repo repository.ComerciableRepository) *ComerciableUseCase {
	return &ComerciableUseCase{repo: repo}
}

// quitaAcentos descompone a NFD, elimina marcas diacríticas y recompone.
var quitaAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarTermino prepara un término de búsqueda: minúsculas y sin acentos,
// para que "Vacúna" y "vacuna" encuentren lo mismo.
func NormalizarTermino(s string) string {
	out, _, err := transform.String(quitaAcentos, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// Create crea un comerciable nuevo en el catálogo de la clínica.
func (uc *ComerciableUseCase) Create(clinicaID string, in dto.CreateComerciableRequest) (*dto.ComerciableResponse, error) {
	if !entity.TipoValido(in.Tipo) {
		return nil, domain.NuevoErrorCampo("tipo", "tipo de comerciable desconocido")
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.NuevoErrorCampo("nombre", "el nombre es obligatorio")
	}
	if in.PrecioCUP.IsNegative() || in.Costo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Comerciable{
		ID:          uuid.New().String(),
		ClinicaID:   clinicaID,
		Tipo:        in.Tipo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		PrecioCUP:   in.PrecioCUP,
		Costo:       in.Costo,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toComerciableResponse(c), nil
}

// GetByID obtiene un comerciable por ID, validando pertenencia a la clínica.
func (uc *ComerciableUseCase) GetByID(clinicaID, id string) (*dto.ComerciableResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	return toComerciableResponse(c), nil
}

// Update actualiza nombre, descripción, precios y estado activo.
func (uc *ComerciableUseCase) Update(clinicaID, id string, in dto.UpdateComerciableRequest) (*dto.ComerciableResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.ClinicaID != clinicaID {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Nombre) != "" {
		c.Nombre = in.Nombre
	}
	c.Descripcion = in.Descripcion
	if in.PrecioCUP.IsNegative() || in.Costo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	c.PrecioCUP = in.PrecioCUP
	c.Costo = in.Costo
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toComerciableResponse(c), nil
}

// List lista el catálogo de la clínica, opcionalmente filtrado por tipo.
func (uc *ComerciableUseCase) List(clinicaID, tipo string, limit, offset int) ([]dto.ComerciableResponse, error) {
	if tipo != "" && !entity.TipoValido(tipo) {
		return nil, domain.NuevoErrorCampo("tipo", "tipo de comerciable desconocido")
	}
	list, err := uc.repo.ListByClinica(clinicaID, tipo, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComerciableResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toComerciableResponse(c))
	}
	return items, nil
}

// Search busca comerciables por nombre para el autocompletado. El término se
// normaliza aquí y el repositorio compara contra nombres igualmente
// normalizados. Un término vacío devuelve lista vacía sin tocar la DB.
func (uc *ComerciableUseCase) Search(clinicaID string, in dto.SearchComerciablesRequest) ([]dto.ComerciableResponse, error) {
	termino := NormalizarTermino(in.Termino)
	if termino == "" {
		return []dto.ComerciableResponse{}, nil
	}
	if in.Tipo != "" && !entity.TipoValido(in.Tipo) {
		return nil, domain.NuevoErrorCampo("tipo", "tipo de comerciable desconocido")
	}
	limit := in.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	list, err := uc.repo.Search(clinicaID, termino, in.Tipo, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComerciableResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toComerciableResponse(c))
	}
	return items, nil
}

// Delete elimina un comerciable del catálogo.
func (uc *ComerciableUseCase) Delete(clinicaID, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.ClinicaID != clinicaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toComerciableResponse(c *entity.Comerciable) *dto.ComerciableResponse {
	if c == nil {
		return nil
	}
	return &dto.ComerciableResponse{
		ID:          c.ID,
		ClinicaID:   c.ClinicaID,
		Tipo:        c.Tipo,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		PrecioCUP:   c.PrecioCUP,
		Costo:       c.Costo,
		Activo:      c.Activo,
	}
}
