package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vetcare-cu/veterinaria-api/internal/domain"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/entity"
	"github.com/vetcare-cu/veterinaria-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioCols = `id, clinica_id, email, password_hash, nombre, rol, estado, created_at, updated_at`

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, clinica_id, email, password_hash, nombre, rol, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.ClinicaID, u.Email, u.PasswordHash, u.Nombre, u.Rol, u.Estado,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmailAndClinica obtiene un usuario por email dentro de una clínica.
func (r *UsuarioRepo) GetByEmailAndClinica(email, clinicaID string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1 AND clinica_id = $2`, email, clinicaID)
}

// FindByEmail obtiene un usuario por email (cualquier clínica), para login.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1`, email)
}

// Update actualiza un usuario existente.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, password_hash = $3, nombre = $4, rol = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.Nombre, u.Rol, u.Estado, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListByClinica lista usuarios por clínica con paginación.
func (r *UsuarioRepo) ListByClinica(clinicaID string, limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE clinica_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, clinicaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.ClinicaID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Estado,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) uno(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.ClinicaID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Estado,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
