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

var _ repository.DrawRepository = (*DrawRepo)(nil)

// DrawRepo implementación del puerto DrawRepository sobre PostgreSQL.
type DrawRepo struct {
	db DB
}

// NewDrawRepository construye el adaptador de persistencia para arqueos.
func NewDrawRepository(db DB) *DrawRepo {
	return &DrawRepo{db: db}
}

// Create persiste un nuevo arqueo.
func (r *DrawRepo) Create(d *entity.Draw) error {
	query := `
		INSERT INTO draws (id, date, cash_amount, total_amount, plus_minus, system_amount,
			comment, shop_id, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		d.ID, d.Date, d.CashAmount, d.TotalAmount, d.PlusMinus, d.SystemAmount,
		d.Comment, d.ShopID, d.CreatedBy, d.UpdatedBy, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isNotNullViolation(err) {
			return domain.NewValidationError(columnOf(err) + " es requerido")
		}
		return fmt.Errorf("insert draw: %w", err)
	}
	return nil
}

// GetByID obtiene un arqueo por ID. Devuelve (nil, nil) si no existe.
func (r *DrawRepo) GetByID(id string) (*entity.Draw, error) {
	query := `
		SELECT id, date, cash_amount, total_amount, plus_minus, system_amount, comment,
			shop_id, created_by, updated_by, created_at, updated_at
		FROM draws WHERE id = $1`
	var d entity.Draw
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Date, &d.CashAmount, &d.TotalAmount, &d.PlusMinus, &d.SystemAmount, &d.Comment,
		&d.ShopID, &d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draw by id: %w", err)
	}
	return &d, nil
}

// Update actualiza un arqueo.
func (r *DrawRepo) Update(d *entity.Draw) error {
	query := `
		UPDATE draws SET date = $2, cash_amount = $3, total_amount = $4, plus_minus = $5,
			system_amount = $6, comment = $7, shop_id = $8, updated_by = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		d.ID, d.Date, d.CashAmount, d.TotalAmount, d.PlusMinus, d.SystemAmount,
		d.Comment, d.ShopID, d.UpdatedBy, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update draw: %w", err)
	}
	return nil
}

// List devuelve los arqueos de la tienda indicada (nil = todas) con sus
// referencias, ordenados por fecha descendente.
func (r *DrawRepo) List(shopID *string) ([]*entity.Draw, error) {
	return r.query(`WHERE $1::text IS NULL OR d.shop_id = $1`, shopID)
}

// ListByDateRange devuelve los arqueos de una tienda con fecha en [from, to],
// orden descendente (consulta de conciliación).
func (r *DrawRepo) ListByDateRange(shopID string, from, to time.Time) ([]*entity.Draw, error) {
	return r.query(`WHERE d.shop_id = $1 AND d.date BETWEEN $2 AND $3`, shopID, from, to)
}

func (r *DrawRepo) query(where string, args ...any) ([]*entity.Draw, error) {
	query := `
		SELECT d.id, d.date, d.cash_amount, d.total_amount, d.plus_minus, d.system_amount,
			d.comment, d.shop_id, d.created_by, d.updated_by, d.created_at, d.updated_at,
			cu.id, cu.first_name, cu.last_name, cu.email,
			uu.id, uu.first_name, uu.last_name, uu.email,
			s.id, s.name, s.created_at, s.updated_at, s.deleted_at
		FROM draws d
		LEFT JOIN users cu ON cu.id = d.created_by
		LEFT JOIN users uu ON uu.id = d.updated_by
		LEFT JOIN shops s ON s.id = d.shop_id
		` + where + `
		ORDER BY d.date DESC`
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list draws: %w", err)
	}
	defer rows.Close()

	var list []*entity.Draw
	for rows.Next() {
		var d entity.Draw
		var cu, uu refScan
		var s shopScan
		if err := rows.Scan(
			&d.ID, &d.Date, &d.CashAmount, &d.TotalAmount, &d.PlusMinus, &d.SystemAmount,
			&d.Comment, &d.ShopID, &d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt,
			&cu.id, &cu.firstName, &cu.lastName, &cu.email,
			&uu.id, &uu.firstName, &uu.lastName, &uu.email,
			&s.id, &s.name, &s.createdAt, &s.updatedAt, &s.deletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan draw: %w", err)
		}
		d.CreatedByUser = cu.ref()
		d.UpdatedByUser = uu.ref()
		d.Shop = s.shop()
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina definitivamente el arqueo (sin tombstone ni restore).
func (r *DrawRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM draws WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete draw: %w", err)
	}
	return nil
}
