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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	db DB
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(db DB) *PurchaseRepo {
	return &PurchaseRepo{db: db}
}

// Create persiste una nueva compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, date, amount, is_declared, is_outside, invoice_number,
			comment, shop_id, supplier_id, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Date, p.Amount, p.IsDeclared, p.IsOutside, p.InvoiceNumber,
		p.Comment, p.ShopID, p.SupplierID, p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isNotNullViolation(err) {
			return domain.NewValidationError(columnOf(err) + " es requerido")
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID. Devuelve (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, date, amount, is_declared, is_outside, invoice_number, comment,
			shop_id, supplier_id, created_by, updated_by, created_at, updated_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Date, &p.Amount, &p.IsDeclared, &p.IsOutside, &p.InvoiceNumber, &p.Comment,
		&p.ShopID, &p.SupplierID, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase by id: %w", err)
	}
	return &p, nil
}

// Update actualiza una compra.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `
		UPDATE purchases SET date = $2, amount = $3, is_declared = $4, is_outside = $5,
			invoice_number = $6, comment = $7, shop_id = $8, supplier_id = $9,
			updated_by = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Date, p.Amount, p.IsDeclared, p.IsOutside,
		p.InvoiceNumber, p.Comment, p.ShopID, p.SupplierID, p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// List devuelve las compras de la tienda indicada (nil = todas) con sus
// referencias, ordenadas por fecha descendente.
func (r *PurchaseRepo) List(shopID *string) ([]*entity.Purchase, error) {
	return r.query(`WHERE $1::text IS NULL OR p.shop_id = $1`, shopID)
}

// ListOutside como List pero solo compras marcadas is_outside.
func (r *PurchaseRepo) ListOutside(shopID *string) ([]*entity.Purchase, error) {
	return r.query(`WHERE p.is_outside AND ($1::text IS NULL OR p.shop_id = $1)`, shopID)
}

// ListByDateRange devuelve las compras de una tienda con fecha en [from, to],
// orden descendente (consulta de conciliación).
func (r *PurchaseRepo) ListByDateRange(shopID string, from, to time.Time) ([]*entity.Purchase, error) {
	return r.query(`WHERE p.shop_id = $1 AND p.date BETWEEN $2 AND $3`, shopID, from, to)
}

func (r *PurchaseRepo) query(where string, args ...any) ([]*entity.Purchase, error) {
	query := `
		SELECT p.id, p.date, p.amount, p.is_declared, p.is_outside, p.invoice_number,
			p.comment, p.shop_id, p.supplier_id, p.created_by, p.updated_by,
			p.created_at, p.updated_at,
			cu.id, cu.first_name, cu.last_name, cu.email,
			uu.id, uu.first_name, uu.last_name, uu.email,
			s.id, s.name, s.created_at, s.updated_at, s.deleted_at,
			sp.id, sp.company
		FROM purchases p
		LEFT JOIN users cu ON cu.id = p.created_by
		LEFT JOIN users uu ON uu.id = p.updated_by
		LEFT JOIN shops s ON s.id = p.shop_id
		LEFT JOIN suppliers sp ON sp.id = p.supplier_id
		` + where + `
		ORDER BY p.date DESC`
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var cu, uu refScan
		var s shopScan
		var spID, spCompany *string
		if err := rows.Scan(
			&p.ID, &p.Date, &p.Amount, &p.IsDeclared, &p.IsOutside, &p.InvoiceNumber,
			&p.Comment, &p.ShopID, &p.SupplierID, &p.CreatedBy, &p.UpdatedBy,
			&p.CreatedAt, &p.UpdatedAt,
			&cu.id, &cu.firstName, &cu.lastName, &cu.email,
			&uu.id, &uu.firstName, &uu.lastName, &uu.email,
			&s.id, &s.name, &s.createdAt, &s.updatedAt, &s.deletedAt,
			&spID, &spCompany,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.CreatedByUser = cu.ref()
		p.UpdatedByUser = uu.ref()
		p.Shop = s.shop()
		if spID != nil {
			p.Supplier = &entity.Supplier{ID: *spID, Company: deref(spCompany)}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina definitivamente la compra (sin tombstone ni restore).
func (r *PurchaseRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}
