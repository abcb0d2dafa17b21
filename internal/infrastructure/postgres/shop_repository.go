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

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	db DB
}

// NewShopRepository construye el adaptador de persistencia para tiendas.
func NewShopRepository(db DB) *ShopRepo {
	return &ShopRepo{db: db}
}

// Create persiste una nueva tienda.
func (r *ShopRepo) Create(s *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, created_by, updated_by, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.Name, s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt, s.DeletedAt,
	)
	if err != nil {
		if isNotNullViolation(err) {
			return domain.NewValidationError(columnOf(err) + " es requerido")
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID; con includeDeleted encuentra también
// tiendas desactivadas. Devuelve (nil, nil) si no existe.
func (r *ShopRepo) GetByID(id string, includeDeleted bool) (*entity.Shop, error) {
	query := `
		SELECT id, name, created_by, updated_by, created_at, updated_at, deleted_at
		FROM shops WHERE id = $1 AND ($2 OR deleted_at IS NULL)`
	var s entity.Shop
	err := r.db.QueryRow(context.Background(), query, id, includeDeleted).Scan(
		&s.ID, &s.Name, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop by id: %w", err)
	}
	return &s, nil
}

// Update actualiza una tienda.
func (r *ShopRepo) Update(s *entity.Shop) error {
	query := `UPDATE shops SET name = $2, updated_by = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, s.ID, s.Name, s.UpdatedBy, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// List devuelve las tiendas con referencias de auditoría, más recientes
// primero; con includeDeleted también las desactivadas.
func (r *ShopRepo) List(includeDeleted bool) ([]*entity.Shop, error) {
	query := `
		SELECT s.id, s.name, s.created_by, s.updated_by, s.created_at, s.updated_at, s.deleted_at,
			cu.id, cu.first_name, cu.last_name, cu.email,
			uu.id, uu.first_name, uu.last_name, uu.email
		FROM shops s
		LEFT JOIN users cu ON cu.id = s.created_by
		LEFT JOIN users uu ON uu.id = s.updated_by
		WHERE $1 OR s.deleted_at IS NULL
		ORDER BY s.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var list []*entity.Shop
	for rows.Next() {
		var s entity.Shop
		var cu, uu refScan
		if err := rows.Scan(
			&s.ID, &s.Name, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
			&cu.id, &cu.firstName, &cu.lastName, &cu.email,
			&uu.id, &uu.firstName, &uu.lastName, &uu.email,
		); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		s.CreatedByUser = cu.ref()
		s.UpdatedByUser = uu.ref()
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SoftDelete desactiva la tienda (tombstone) y estampa updatedBy.
func (r *ShopRepo) SoftDelete(id, actorID string) error {
	query := `UPDATE shops SET deleted_at = $3, updated_by = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete shop: %w", err)
	}
	return nil
}

// Restore limpia el tombstone de la tienda y estampa updatedBy.
func (r *ShopRepo) Restore(id, actorID string) error {
	query := `UPDATE shops SET deleted_at = NULL, updated_by = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("restore shop: %w", err)
	}
	return nil
}

// Delete elimina definitivamente el registro (purga final).
func (r *ShopRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	return nil
}
