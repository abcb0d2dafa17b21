package dto

import "time"

// CreateShopRequest entrada para crear una tienda.
type CreateShopRequest struct {
	Name string `json:"name"`
}

// UpdateShopRequest entrada para renombrar una tienda.
type UpdateShopRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShopIDRequest entrada para deactivate/restore/delete por id.
type ShopIDRequest struct {
	ID string `json:"id"`
}

// ShopResponse salida de una tienda.
type ShopResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     *time.Time       `json:"deleted_at"`
	CreatedByUser *UserRefResponse `json:"created_by_user,omitempty"`
	UpdatedByUser *UserRefResponse `json:"updated_by_user,omitempty"`
}
