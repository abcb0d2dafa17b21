package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/event"
	"github.com/andresfq/caja-api/internal/domain/policy"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; el uso de interfaz evita acoplar el caso
// de uso a la infraestructura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		shopRepo repository.ShopRepository,
		userRepo repository.UserRepository,
	) error) error
}

// ShopUseCase casos de uso de tiendas (solo superadmin).
type ShopUseCase struct {
	shops repository.ShopRepository
	tx    TxRunner
	now   func() time.Time
}

// NewShopUseCase construye el caso de uso con el puerto de persistencia y el
// runner transaccional para la cascada de desactivación.
func NewShopUseCase(shops repository.ShopRepository, tx TxRunner) *ShopUseCase {
	return &ShopUseCase{shops: shops, tx: tx, now: time.Now}
}

// List devuelve las tiendas; con includeDeleted también las desactivadas.
func (uc *ShopUseCase) List(actor policy.Actor, includeDeleted bool) ([]dto.ShopResponse, error) {
	if !policy.CanManageShops(actor) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.shops.List(includeDeleted)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShopResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShopResponse(s))
	}
	return items, nil
}

// Create crea una nueva tienda.
func (uc *ShopUseCase) Create(actor policy.Actor, in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if !policy.CanManageShops(actor) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.NewValidationError("name es requerido")
	}
	now := uc.now()
	s := &entity.Shop{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedBy: &actor.ID,
		UpdatedBy: &actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.shops.Create(s); err != nil {
		return nil, err
	}
	return toShopResponse(s), nil
}

// Update renombra una tienda (también desactivada, para corregir antes de restaurar).
func (uc *ShopUseCase) Update(actor policy.Actor, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	if !policy.CanManageShops(actor) {
		return nil, domain.ErrForbidden
	}
	s, err := uc.shops.GetByID(in.ID, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.NewValidationError("name es requerido")
	}
	s.Name = in.Name
	s.UpdatedBy = &actor.ID
	s.UpdatedAt = uc.now()
	if err := uc.shops.Update(s); err != nil {
		return nil, err
	}
	return toShopResponse(s), nil
}

// Deactivate pone el tombstone a la tienda y despacha ShopDeactivated dentro
// de la misma transacción: todos los usuarios de la tienda quedan
// desactivados junto con ella, o nada queda desactivado.
func (uc *ShopUseCase) Deactivate(actor policy.Actor, id string) (*dto.ShopResponse, error) {
	if !policy.CanManageShops(actor) {
		return nil, domain.ErrForbidden
	}
	s, err := uc.shops.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	ev := event.ShopDeactivated{ShopID: id, ActorID: actor.ID, At: uc.now()}
	err = uc.tx.Run(context.Background(), func(shops repository.ShopRepository, users repository.UserRepository) error {
		if err := shops.SoftDelete(ev.ShopID, ev.ActorID); err != nil {
			return err
		}
		return onShopDeactivated(ev, users)
	})
	if err != nil {
		return nil, err
	}
	s, err = uc.shops.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	return toShopResponse(s), nil
}

// onShopDeactivated es el manejador síncrono de ShopDeactivated: desactiva a
// todos los usuarios activos de la tienda con los repos de la transacción.
func onShopDeactivated(ev event.ShopDeactivated, users repository.UserRepository) error {
	return users.DeactivateByShop(ev.ShopID, ev.ActorID)
}

// Restore limpia el tombstone de la tienda. Los usuarios desactivados por la
// cascada NO se reactivan: se restauran uno a uno si corresponde.
func (uc *ShopUseCase) Restore(actor policy.Actor, id string) (*dto.ShopResponse, error) {
	if !policy.CanManageShops(actor) {
		return nil, domain.ErrForbidden
	}
	s, err := uc.shops.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.shops.Restore(id, actor.ID); err != nil {
		return nil, err
	}
	s, err = uc.shops.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	return toShopResponse(s), nil
}

// Delete purga definitivamente una tienda (irreversible).
func (uc *ShopUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageShops(actor) {
		return domain.ErrForbidden
	}
	s, err := uc.shops.GetByID(id, true)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.shops.Delete(id)
}
