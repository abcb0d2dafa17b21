package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case). ShopID solo lo respeta un superadmin; el resto
// queda anclado a su propia tienda.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	ShopID    string `json:"shop_id"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Tel       string `json:"tel"`
}

// UpdateUserRequest entrada para editar un usuario existente.
type UpdateUserRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	ShopID    string `json:"shop_id"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Tel       string `json:"tel"`
}

// UserIDRequest entrada para verify/deactivate/restore/delete por id.
type UserIDRequest struct {
	UserID string `json:"user_id"`
}

// UpdateProfileRequest edición del propio perfil (sin rol ni tienda).
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Tel       string `json:"tel"`
}

// ChangePasswordRequest cambio de contraseña propio.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string           `json:"id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Email         string           `json:"email"`
	City          string           `json:"city,omitempty"`
	Address       string           `json:"address,omitempty"`
	Tel           string           `json:"tel,omitempty"`
	Role          string           `json:"role"`
	ShopID        *string          `json:"shop_id"`
	Verified      bool             `json:"verified"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     *time.Time       `json:"deleted_at"`
	CreatedByUser *UserRefResponse `json:"created_by_user,omitempty"`
	UpdatedByUser *UserRefResponse `json:"updated_by_user,omitempty"`
	Shop          *ShopResponse    `json:"shop,omitempty"`
}
