package entity

import "time"

// Supplier representa un proveedor. Company es la clave natural (única):
// al registrar una compra se resuelve el proveedor por nombre de empresa
// con un find-or-create. Soporta borrado lógico.
type Supplier struct {
	ID        string
	Company   string
	City      string
	Address   string
	Tel       string
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	CreatedByUser *UserRef
	UpdatedByUser *UserRef
}
