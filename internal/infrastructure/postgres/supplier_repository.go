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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	db DB
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(db DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

const supplierColumns = `id, company, city, address, tel, created_by, updated_by, created_at, updated_at, deleted_at`

// Create persiste un nuevo proveedor. Devuelve domain.ErrDuplicate si el
// nombre de empresa ya existe (constraint único sobre company).
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.Company, s.City, s.Address, s.Tel, s.CreatedBy, s.UpdatedBy,
		s.CreatedAt, s.UpdatedAt, s.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isNotNullViolation(err) {
			return domain.NewValidationError(columnOf(err) + " es requerido")
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; con includeDeleted encuentra también
// proveedores desactivados. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string, includeDeleted bool) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1 AND ($2 OR deleted_at IS NULL)`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id, includeDeleted), "get supplier by id")
}

// GetByCompany busca un proveedor activo por nombre exacto de empresa
// (clave natural del find-or-create).
func (r *SupplierRepo) GetByCompany(company string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE company = $1 AND deleted_at IS NULL LIMIT 1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, company), "get supplier by company")
}

func (r *SupplierRepo) scanOne(row pgx.Row, op string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Company, &s.City, &s.Address, &s.Tel, &s.CreatedBy, &s.UpdatedBy,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET company = $2, city = $3, address = $4, tel = $5,
			updated_by = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.Company, s.City, s.Address, s.Tel, s.UpdatedBy, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List devuelve los proveedores con referencias de auditoría; con
// includeDeleted también los desactivados.
func (r *SupplierRepo) List(includeDeleted bool) ([]*entity.Supplier, error) {
	query := `
		SELECT s.id, s.company, s.city, s.address, s.tel, s.created_by, s.updated_by,
			s.created_at, s.updated_at, s.deleted_at,
			cu.id, cu.first_name, cu.last_name, cu.email,
			uu.id, uu.first_name, uu.last_name, uu.email
		FROM suppliers s
		LEFT JOIN users cu ON cu.id = s.created_by
		LEFT JOIN users uu ON uu.id = s.updated_by
		WHERE $1 OR s.deleted_at IS NULL
		ORDER BY s.company ASC`
	rows, err := r.db.Query(context.Background(), query, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var cu, uu refScan
		if err := rows.Scan(
			&s.ID, &s.Company, &s.City, &s.Address, &s.Tel, &s.CreatedBy, &s.UpdatedBy,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
			&cu.id, &cu.firstName, &cu.lastName, &cu.email,
			&uu.id, &uu.firstName, &uu.lastName, &uu.email,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		s.CreatedByUser = cu.ref()
		s.UpdatedByUser = uu.ref()
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SoftDelete desactiva el proveedor (tombstone) y estampa updatedBy.
func (r *SupplierRepo) SoftDelete(id, actorID string) error {
	query := `UPDATE suppliers SET deleted_at = $3, updated_by = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete supplier: %w", err)
	}
	return nil
}

// Restore limpia el tombstone del proveedor y estampa updatedBy.
func (r *SupplierRepo) Restore(id, actorID string) error {
	query := `UPDATE suppliers SET deleted_at = NULL, updated_by = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, actorID, time.Now())
	if err != nil {
		return fmt.Errorf("restore supplier: %w", err)
	}
	return nil
}

// Delete elimina definitivamente el registro (purga final).
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
