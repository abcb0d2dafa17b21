package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Draw representa el arqueo de caja de una tienda: efectivo contado contra
// el monto reportado por el sistema. PlusMinus es la variación
// (TotalAmount - SystemAmount). Sin borrado lógico: eliminar es definitivo.
type Draw struct {
	ID           string
	Date         time.Time
	CashAmount   decimal.Decimal
	TotalAmount  decimal.Decimal
	PlusMinus    decimal.Decimal
	SystemAmount decimal.Decimal
	Comment      string
	ShopID       string
	CreatedBy    *string
	UpdatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CreatedByUser *UserRef
	UpdatedByUser *UserRef
	Shop          *Shop
}
