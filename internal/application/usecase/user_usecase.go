package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/policy"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// UserUseCase casos de uso de administración de usuarios (superadmin/admin)
// más las operaciones de perfil propio (cualquier autenticado).
type UserUseCase struct {
	users repository.UserRepository
	now   func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users, now: time.Now}
}

// List devuelve los usuarios visibles para el actor (incluidos los
// desactivados): todos para superadmin, los de su tienda para admin.
// Orden: no verificados primero, luego más recientes primero.
func (uc *UserUseCase) List(actor policy.Actor) ([]dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.users.List(policy.ScopeShop(actor))
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Create da de alta un usuario. Un actor que no sea superadmin no puede
// crear superadmins ni asignar una tienda ajena; un superadmin nuevo no
// lleva tienda. El password se hashea con bcrypt.
func (uc *UserUseCase) Create(actor policy.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	if !policy.CanAssignRole(actor, in.Role) {
		return nil, domain.ErrForbidden
	}
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"first_name", in.FirstName}, {"last_name", in.LastName},
		{"email", in.Email}, {"password", in.Password},
	} {
		if f.value == "" {
			missing = append(missing, f.name+" es requerido")
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}
	shopID := policy.UserShopFor(actor, in.ShopID, in.Role)
	if in.Role != entity.RoleSuperadmin && shopID == nil {
		return nil, domain.NewValidationError("shop_id es requerido")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	u := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		City:         in.City,
		Address:      in.Address,
		Tel:          in.Tel,
		Role:         in.Role,
		ShopID:       shopID,
		PasswordHash: string(hash),
		CreatedBy:    &actor.ID,
		UpdatedBy:    &actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(u); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewValidationError("email ya está registrado")
		}
		return nil, err
	}
	return toUserResponse(u), nil
}

// Update edita un usuario (también desactivado), dentro del alcance del
// actor y con las mismas restricciones de rol y tienda que el alta.
func (uc *UserUseCase) Update(actor policy.Actor, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	u, err := uc.users.GetByID(in.ID, true)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanTouchUser(actor, u) {
		return nil, domain.ErrForbidden
	}
	if !policy.CanAssignRole(actor, in.Role) {
		return nil, domain.ErrForbidden
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Role = in.Role
	u.ShopID = policy.UserShopFor(actor, in.ShopID, in.Role)
	u.City = in.City
	u.Address = in.Address
	u.Tel = in.Tel
	u.UpdatedBy = &actor.ID
	u.UpdatedAt = uc.now()
	if err := uc.users.Update(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Verify marca al usuario como verificado (transición de una sola vía).
func (uc *UserUseCase) Verify(actor policy.Actor, userID string) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	u, err := uc.users.GetByID(userID, true)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanTouchUser(actor, u) {
		return nil, domain.ErrForbidden
	}
	u.Verified = true
	u.UpdatedBy = &actor.ID
	u.UpdatedAt = uc.now()
	if err := uc.users.Update(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Deactivate pone el tombstone al usuario (reversible con Restore).
func (uc *UserUseCase) Deactivate(actor policy.Actor, userID string) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	u, err := uc.users.GetByID(userID, true)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanTouchUser(actor, u) {
		return nil, domain.ErrForbidden
	}
	if err := uc.users.SoftDelete(userID, actor.ID); err != nil {
		return nil, err
	}
	u, err = uc.users.GetByID(userID, true)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Restore limpia el tombstone del usuario. Restaurar un usuario no reactiva
// su tienda.
func (uc *UserUseCase) Restore(actor policy.Actor, userID string) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	u, err := uc.users.GetByID(userID, true)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanTouchUser(actor, u) {
		return nil, domain.ErrForbidden
	}
	if err := uc.users.Restore(userID, actor.ID); err != nil {
		return nil, err
	}
	u, err = uc.users.GetByID(userID, false)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Delete purga definitivamente un usuario (irreversible).
func (uc *UserUseCase) Delete(actor policy.Actor, userID string) error {
	if !policy.CanManageUsers(actor) {
		return domain.ErrForbidden
	}
	u, err := uc.users.GetByID(userID, true)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	if !policy.CanTouchUser(actor, u) {
		return domain.ErrForbidden
	}
	return uc.users.Delete(userID)
}

// UpdateProfile edita los datos de identidad del propio actor (sin tocar
// rol, tienda ni verificación).
func (uc *UserUseCase) UpdateProfile(actor policy.Actor, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	u, err := uc.users.GetByID(actor.ID, false)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.City = in.City
	u.Address = in.Address
	u.Tel = in.Tel
	u.UpdatedBy = &actor.ID
	u.UpdatedAt = uc.now()
	if err := uc.users.Update(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ChangePassword cambia la contraseña del propio actor verificando primero
// la actual.
func (uc *UserUseCase) ChangePassword(actor policy.Actor, in dto.ChangePasswordRequest) error {
	if !actor.Authenticated() {
		return domain.ErrForbidden
	}
	if in.NewPassword == "" {
		return domain.NewValidationError("new_password es requerido")
	}
	u, err := uc.users.GetByID(actor.ID, false)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.NewValidationError("current_password no coincide")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedBy = &actor.ID
	u.UpdatedAt = uc.now()
	return uc.users.Update(u)
}
