package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare-cu/veterinaria-api/internal/application/auth"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	apphttp "github.com/vetcare-cu/veterinaria-api/internal/interfaces/http"
)

// usuarioRepoFijo devuelve siempre el mismo usuario en FindByEmail (o ninguno).
type usuarioRepoFijo struct {
	usuario *entity.Usuario
}

func (r *usuarioRepoFijo) Create(*entity.Usuario) error                        { return nil }
func (r *usuarioRepoFijo) GetByID(string) (*entity.Usuario, error)             { return nil, nil }
func (r *usuarioRepoFijo) GetByEmailAndClinica(string, string) (*entity.Usuario, error) {
	return nil, nil
}
func (r *usuarioRepoFijo) Update(*entity.Usuario) error { return nil }
func (r *usuarioRepoFijo) ListByClinica(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (r *usuarioRepoFijo) Delete(string) error { return nil }
func (r *usuarioRepoFijo) FindByEmail(string) (*entity.Usuario, error) {
	return r.usuario, nil
}

func buildAuthApp(repo *usuarioRepoFijo) *fiber.App {
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	h := apphttp.NewAuthHandler(uc)
	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func usuarioConPassword(t *testing.T, password, estado string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:           testUserID,
		ClinicaID:    testClinicaID,
		Email:        "vet@clinica.cu",
		PasswordHash: string(hash),
		Nombre:       "Vet",
		Rol:          "veterinario",
		Estado:       estado,
	}
}

func TestLogin_EmailDesconocidoRetorna401(t *testing.T) {
	app := buildAuthApp(&usuarioRepoFijo{})
	resp := postLogin(t, app, "nadie@clinica.cu", "cualquiera")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un email desconocido debe responder 401, no filtrar si existe")
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UNAUTHORIZED")
}

func TestLogin_PasswordIncorrectaRetorna401(t *testing.T) {
	app := buildAuthApp(&usuarioRepoFijo{usuario: usuarioConPassword(t, "correcta123", "active")})
	resp := postLogin(t, app, "vet@clinica.cu", "incorrecta")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_CuentaInactivaRetorna403(t *testing.T) {
	app := buildAuthApp(&usuarioRepoFijo{usuario: usuarioConPassword(t, "correcta123", "suspended")})
	resp := postLogin(t, app, "vet@clinica.cu", "correcta123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"una cuenta no activa debe responder 403 FORBIDDEN")
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "FORBIDDEN")
}

func TestLogin_CredencialesValidasRetornaToken(t *testing.T) {
	app := buildAuthApp(&usuarioRepoFijo{usuario: usuarioConPassword(t, "correcta123", "active")})
	resp := postLogin(t, app, "vet@clinica.cu", "correcta123")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token   string `json:"token"`
		Usuario struct {
			Email string `json:"email"`
		} `json:"usuario"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token, "el login exitoso debe devolver un token")
	assert.Equal(t, "vet@clinica.cu", out.Usuario.Email)
}
