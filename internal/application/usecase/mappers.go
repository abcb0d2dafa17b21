package usecase

import (
	"time"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain/entity"
)

// Formatos de fecha aceptados en los payloads (la UI envía "2006-01-02 15:04").
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// parseDate interpreta la fecha enviada por el cliente; devuelve el cero de
// time.Time si está vacía o no se puede interpretar (la política decide qué
// hacer con una fecha ausente).
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

func toUserRef(r *entity.UserRef) *dto.UserRefResponse {
	if r == nil {
		return nil
	}
	return &dto.UserRefResponse{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:            s.ID,
		Name:          s.Name,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		DeletedAt:     s.DeletedAt,
		CreatedByUser: toUserRef(s.CreatedByUser),
		UpdatedByUser: toUserRef(s.UpdatedByUser),
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Company:       s.Company,
		City:          s.City,
		Address:       s.Address,
		Tel:           s.Tel,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		DeletedAt:     s.DeletedAt,
		CreatedByUser: toUserRef(s.CreatedByUser),
		UpdatedByUser: toUserRef(s.UpdatedByUser),
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		City:          u.City,
		Address:       u.Address,
		Tel:           u.Tel,
		Role:          u.Role,
		ShopID:        u.ShopID,
		Verified:      u.Verified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		DeletedAt:     u.DeletedAt,
		CreatedByUser: toUserRef(u.CreatedByUser),
		UpdatedByUser: toUserRef(u.UpdatedByUser),
		Shop:          toShopResponse(u.Shop),
	}
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		Date:          p.Date,
		Amount:        p.Amount,
		IsDeclared:    p.IsDeclared,
		IsOutside:     p.IsOutside,
		InvoiceNumber: p.InvoiceNumber,
		Comment:       p.Comment,
		ShopID:        p.ShopID,
		SupplierID:    p.SupplierID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CreatedByUser: toUserRef(p.CreatedByUser),
		UpdatedByUser: toUserRef(p.UpdatedByUser),
		Shop:          toShopResponse(p.Shop),
		Supplier:      toSupplierResponse(p.Supplier),
	}
}

func toDrawResponse(d *entity.Draw) *dto.DrawResponse {
	if d == nil {
		return nil
	}
	return &dto.DrawResponse{
		ID:            d.ID,
		Date:          d.Date,
		CashAmount:    d.CashAmount,
		TotalAmount:   d.TotalAmount,
		PlusMinus:     d.PlusMinus,
		SystemAmount:  d.SystemAmount,
		Comment:       d.Comment,
		ShopID:        d.ShopID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		CreatedByUser: toUserRef(d.CreatedByUser),
		UpdatedByUser: toUserRef(d.UpdatedByUser),
		Shop:          toShopResponse(d.Shop),
	}
}
