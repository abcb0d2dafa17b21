package entity

import "time"

// Roles válidos para User. Jerarquía: superadmin > admin > employee.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
)

// User representa un usuario del sistema. Todo usuario que no sea superadmin
// pertenece exactamente a una tienda (ShopID nil solo para superadmin).
// DeletedAt distinto de nil = usuario desactivado (borrado lógico).
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	City         string
	Address      string
	Tel          string
	Role         string // superadmin, admin, employee
	ShopID       *string
	Verified     bool
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedBy    *string
	UpdatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Referencias expandidas en listados (opcionales).
	CreatedByUser *UserRef
	UpdatedByUser *UserRef
	Shop          *Shop
}

// UserRef versión reducida de User para anidar en otras entidades
// (auditoría createdBy/updatedBy) sin arrastrar el hash de password.
type UserRef struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// Active indica si el usuario no está desactivado.
func (u *User) Active() bool { return u.DeletedAt == nil }
