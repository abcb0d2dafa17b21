package usecase

import (
	"time"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/policy"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// ReconciliationUseCase arma la vista de conciliación de un día: las compras
// y arqueos de una tienda dentro de los límites del día, para comparar el
// efectivo contado contra lo registrado.
type ReconciliationUseCase struct {
	purchases repository.PurchaseRepository
	draws     repository.DrawRepository
	now       func() time.Time
}

// NewReconciliationUseCase construye el caso de uso con los puertos de persistencia.
func NewReconciliationUseCase(purchases repository.PurchaseRepository, draws repository.DrawRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{purchases: purchases, draws: draws, now: time.Now}
}

// dayBounds devuelve los límites del día de t: [00:00:00.000, 23:59:59.999]
// en la zona horaria de t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	to := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return from, to
}

// DayInfos devuelve las compras y arqueos del día para la tienda resuelta
// por política (superadmin la elige, el resto queda en la suya). La fecha
// sigue las mismas reglas que las escrituras y por defecto es hoy. Es una
// consulta de solo lectura y best-effort: ante cualquier falla de la base
// devuelve ambas listas vacías en lugar de propagar el error.
func (uc *ReconciliationUseCase) DayInfos(actor policy.Actor, dateStr, shopID string) (*dto.DayInfosResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrForbidden
	}
	date := policy.EffectiveDate(actor, parseDate(dateStr), uc.now())
	shop := policy.EffectiveShop(actor, shopID)
	from, to := dayBounds(date)

	out := &dto.DayInfosResponse{
		Purchases: []dto.PurchaseResponse{},
		Draws:     []dto.DrawResponse{},
	}

	purchases, err := uc.purchases.ListByDateRange(shop, from, to)
	if err != nil {
		return out, nil
	}
	draws, err := uc.draws.ListByDateRange(shop, from, to)
	if err != nil {
		return out, nil
	}

	for _, p := range purchases {
		out.Purchases = append(out.Purchases, *toPurchaseResponse(p))
	}
	for _, d := range draws {
		out.Draws = append(out.Draws, *toDrawResponse(d))
	}
	return out, nil
}
