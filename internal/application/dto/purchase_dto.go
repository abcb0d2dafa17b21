package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar una compra. Supplier es el
// nombre de empresa del proveedor (find-or-create, no una FK). Date solo la
// respetan superadmin/admin; ShopID solo superadmin.
type CreatePurchaseRequest struct {
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	IsDeclared    bool            `json:"is_declared"`
	IsOutside     bool            `json:"is_outside"`
	InvoiceNumber string          `json:"invoice_number"`
	Comment       string          `json:"comment"`
	ShopID        string          `json:"shop_id"`
	Supplier      string          `json:"supplier"`
}

// UpdatePurchaseRequest entrada para editar una compra.
type UpdatePurchaseRequest struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	IsDeclared    bool            `json:"is_declared"`
	IsOutside     bool            `json:"is_outside"`
	InvoiceNumber string          `json:"invoice_number"`
	Comment       string          `json:"comment"`
	ShopID        string          `json:"shop_id"`
	Supplier      string          `json:"supplier"`
}

// PurchaseIDRequest entrada para delete por id.
type PurchaseIDRequest struct {
	ID string `json:"id"`
}

// PurchaseResponse salida de una compra con sus referencias.
type PurchaseResponse struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Amount        decimal.Decimal   `json:"amount"`
	IsDeclared    bool              `json:"is_declared"`
	IsOutside     bool              `json:"is_outside"`
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	Comment       string            `json:"comment,omitempty"`
	ShopID        string            `json:"shop_id"`
	SupplierID    string            `json:"supplier_id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	CreatedByUser *UserRefResponse  `json:"created_by_user,omitempty"`
	UpdatedByUser *UserRefResponse  `json:"updated_by_user,omitempty"`
	Shop          *ShopResponse     `json:"shop,omitempty"`
	Supplier      *SupplierResponse `json:"supplier,omitempty"`
}
