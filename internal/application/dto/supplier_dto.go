package dto

import "time"

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	Company string `json:"company"`
	City    string `json:"city"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
}

// UpdateSupplierRequest entrada para editar un proveedor.
type UpdateSupplierRequest struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	City    string `json:"city"`
	Address string `json:"address"`
	Tel     string `json:"tel"`
}

// SupplierIDRequest entrada para deactivate/restore/delete por id.
type SupplierIDRequest struct {
	ID string `json:"id"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string           `json:"id"`
	Company       string           `json:"company"`
	City          string           `json:"city,omitempty"`
	Address       string           `json:"address,omitempty"`
	Tel           string           `json:"tel,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     *time.Time       `json:"deleted_at"`
	CreatedByUser *UserRefResponse `json:"created_by_user,omitempty"`
	UpdatedByUser *UserRefResponse `json:"updated_by_user,omitempty"`
}
