package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Acepta el pool o una transacción (ver TxRunner).
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, first_name, last_name, email, city, address, tel, role, shop_id,
		verified, password_hash, created_by, updated_by, created_at, updated_at, deleted_at`

// Create persiste un nuevo usuario. Devuelve domain.ErrEmailAlreadyExists si
// el email ya está registrado.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.FirstName, u.LastName, u.Email, u.City, u.Address, u.Tel, u.Role, u.ShopID,
		u.Verified, u.PasswordHash, u.CreatedBy, u.UpdatedBy, u.CreatedAt, u.UpdatedAt, u.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isNotNullViolation(err) {
			return domain.NewValidationError(columnOf(err) + " es requerido")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; con includeDeleted encuentra también
// usuarios desactivados. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string, includeDeleted bool) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND ($2 OR deleted_at IS NULL)`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id, includeDeleted), "get user by id")
}

// GetByEmail obtiene un usuario activo por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL LIMIT 1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, email), "get user by email")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.City, &u.Address, &u.Tel, &u.Role, &u.ShopID,
		&u.Verified, &u.PasswordHash, &u.CreatedBy, &u.UpdatedBy, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update actualiza los campos editables de un usuario.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, city = $5, address = $6,
			tel = $7, role = $8, shop_id = $9, verified = $10, password_hash = $11,
			updated_by = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		u.ID, u.FirstName, u.LastName, u.Email, u.City, u.Address, u.Tel, u.Role, u.ShopID,
		u.Verified, u.PasswordHash, u.UpdatedBy, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve los usuarios (activos y desactivados) de la tienda indicada,
// o de todas si shopID es nil, con referencias de auditoría y tienda.
// Orden: no verificados primero, luego más recientes primero.
func (r *UserRepo) List(shopID *string) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.city, u.address, u.tel, u.role,
			u.shop_id, u.verified, u.password_hash, u.created_by, u.updated_by,
			u.created_at, u.updated_at, u.deleted_at,
			cu.id, cu.first_name, cu.last_name, cu.email,
			uu.id, uu.first_name, uu.last_name, uu.email,
			s.id, s.name, s.created_at, s.updated_at, s.deleted_at
		FROM users u
		LEFT JOIN users cu ON cu.id = u.created_by
		LEFT JOIN users uu ON uu.id = u.updated_by
		LEFT JOIN shops s ON s.id = u.shop_id
		WHERE $1::text IS NULL OR u.shop_id = $1
		ORDER BY u.verified ASC, u.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var cu, uu refScan
		var s shopScan
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.City, &u.Address, &u.Tel, &u.Role,
			&u.ShopID, &u.Verified, &u.PasswordHash, &u.CreatedBy, &u.UpdatedBy,
			&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
			&cu.id, &cu.firstName, &cu.lastName, &cu.email,
			&uu.id, &uu.firstName, &uu.lastName, &uu.email,
			&s.id, &s.name, &s.createdAt, &s.updatedAt, &s.deletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.CreatedByUser = cu.ref()
		u.UpdatedByUser = uu.ref()
		u.Shop = s.shop()
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SoftDelete desactiva al usuario (tombstone) y estampa updatedBy.
func (r *UserRepo) SoftDelete(id, actorID string) error {
	query := `UPDATE users SET deleted_at = $3, updated_by = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}

// Restore limpia el tombstone del usuario y estampa updatedBy.
func (r *UserRepo) Restore(id, actorID string) error {
	query := `UPDATE users SET deleted_at = NULL, updated_by = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}
	return nil
}

// Delete elimina definitivamente el registro.
func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// DeactivateByShop desactiva todos los usuarios activos de una tienda
// (cascada de ShopDeactivated).
func (r *UserRepo) DeactivateByShop(shopID, actorID string) error {
	query := `
		UPDATE users SET deleted_at = $3, updated_by = $2, updated_at = $3
		WHERE shop_id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(context.Background(), query, shopID, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("deactivate users by shop: %w", err)
	}
	return nil
}
