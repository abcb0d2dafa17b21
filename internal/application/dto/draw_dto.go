package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDrawRequest entrada para registrar un arqueo de caja. Date solo la
// respetan superadmin/admin; ShopID solo superadmin.
type CreateDrawRequest struct {
	Date         string          `json:"date"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SystemAmount decimal.Decimal `json:"system_amount"`
	Comment      string          `json:"comment"`
	ShopID       string          `json:"shop_id"`
}

// UpdateDrawRequest entrada para editar un arqueo.
type UpdateDrawRequest struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SystemAmount decimal.Decimal `json:"system_amount"`
	Comment      string          `json:"comment"`
	ShopID       string          `json:"shop_id"`
}

// DrawIDRequest entrada para delete por id.
type DrawIDRequest struct {
	ID string `json:"id"`
}

// DrawResponse salida de un arqueo con sus referencias.
type DrawResponse struct {
	ID            string           `json:"id"`
	Date          time.Time        `json:"date"`
	CashAmount    decimal.Decimal  `json:"cash_amount"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	PlusMinus     decimal.Decimal  `json:"plus_minus"`
	SystemAmount  decimal.Decimal  `json:"system_amount"`
	Comment       string           `json:"comment,omitempty"`
	ShopID        string           `json:"shop_id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CreatedByUser *UserRefResponse `json:"created_by_user,omitempty"`
	UpdatedByUser *UserRefResponse `json:"updated_by_user,omitempty"`
	Shop          *ShopResponse    `json:"shop,omitempty"`
}

// DayInfosResponse resultado de la conciliación de un día: compras y arqueos
// de la tienda dentro de los límites del día, ambos orden descendente.
type DayInfosResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	Draws     []DrawResponse     `json:"draws"`
}
