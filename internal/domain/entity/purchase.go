package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra registrada por una tienda. A diferencia de
// User/Shop/Supplier no tiene borrado lógico: eliminar una compra es
// definitivo.
type Purchase struct {
	ID            string
	Date          time.Time
	Amount        decimal.Decimal
	IsDeclared    bool
	IsOutside     bool
	InvoiceNumber string
	Comment       string
	ShopID        string
	SupplierID    string
	CreatedBy     *string
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	CreatedByUser *UserRef
	UpdatedByUser *UserRef
	Shop          *Shop
	Supplier      *Supplier
}
