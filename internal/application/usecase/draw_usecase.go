package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/policy"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// DrawUseCase casos de uso de arqueos de caja.
type DrawUseCase struct {
	draws repository.DrawRepository
	now   func() time.Time
}

// NewDrawUseCase construye el caso de uso con el puerto de persistencia.
func NewDrawUseCase(draws repository.DrawRepository) *DrawUseCase {
	return &DrawUseCase{draws: draws, now: time.Now}
}

// List devuelve los arqueos visibles para el actor: todos para superadmin,
// los de su tienda para el resto. Orden por fecha descendente.
func (uc *DrawUseCase) List(actor policy.Actor) ([]dto.DrawResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.draws.List(policy.ScopeShop(actor))
	if err != nil {
		return nil, err
	}
	items := make([]dto.DrawResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDrawResponse(d))
	}
	return items, nil
}

// Create registra un arqueo. La fecha efectiva y la tienda destino las
// resuelve la política: un employee queda estampado con la hora del servidor
// y anclado a su propia tienda. PlusMinus se calcula en el servidor.
func (uc *DrawUseCase) Create(actor policy.Actor, in dto.CreateDrawRequest) (*dto.DrawResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	shopID := policy.EffectiveShop(actor, in.ShopID)
	if shopID == "" {
		return nil, domain.NewValidationError("shop_id es requerido")
	}
	now := uc.now()
	d := &entity.Draw{
		ID:           uuid.New().String(),
		Date:         policy.EffectiveDate(actor, parseDate(in.Date), now),
		CashAmount:   in.CashAmount,
		TotalAmount:  in.TotalAmount,
		PlusMinus:    in.TotalAmount.Sub(in.SystemAmount),
		SystemAmount: in.SystemAmount,
		Comment:      in.Comment,
		ShopID:       shopID,
		CreatedBy:    &actor.ID,
		UpdatedBy:    &actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.draws.Create(d); err != nil {
		return nil, err
	}
	return toDrawResponse(d), nil
}

// Update edita un arqueo existente. Solo se aplican los campos que la
// política permite al actor: la fecha solo si puede fijarla; la tienda según
// su alcance. Recalcula PlusMinus y estampa updatedBy.
func (uc *DrawUseCase) Update(actor policy.Actor, in dto.UpdateDrawRequest) (*dto.DrawResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	d, err := uc.draws.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanSee(actor, d.ShopID) {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	if policy.For(actor).OverrideDate {
		d.Date = policy.EffectiveDate(actor, parseDate(in.Date), now)
	}
	d.CashAmount = in.CashAmount
	d.TotalAmount = in.TotalAmount
	d.SystemAmount = in.SystemAmount
	d.PlusMinus = in.TotalAmount.Sub(in.SystemAmount)
	d.Comment = in.Comment
	d.ShopID = policy.EffectiveShop(actor, in.ShopID)
	d.UpdatedBy = &actor.ID
	d.UpdatedAt = now
	if err := uc.draws.Update(d); err != nil {
		return nil, err
	}
	return toDrawResponse(d), nil
}

// Delete elimina definitivamente un arqueo. Superadmin puede borrar
// cualquiera; admin los de su tienda; employee solo los que creó él mismo.
func (uc *DrawUseCase) Delete(actor policy.Actor, id string) error {
	if !actor.Authenticated() {
		return domain.ErrForbidden
	}
	d, err := uc.draws.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if !policy.CanDeleteRecord(actor, d.ShopID, d.CreatedBy) {
		return domain.ErrForbidden
	}
	return uc.draws.Delete(id)
}
