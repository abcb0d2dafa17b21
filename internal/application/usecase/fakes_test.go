package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/andresfq/caja-api/internal/domain"
	"github.com/andresfq/caja-api/internal/domain/entity"
	"github.com/andresfq/caja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeDrawRepo struct {
	draws map[string]*entity.Draw
	err   error // si no es nil, toda operación falla con este error
}

func newFakeDrawRepo() *fakeDrawRepo {
	return &fakeDrawRepo{draws: map[string]*entity.Draw{}}
}

func (r *fakeDrawRepo) Create(d *entity.Draw) error {
	if r.err != nil {
		return r.err
	}
	cp := *d
	r.draws[d.ID] = &cp
	return nil
}

func (r *fakeDrawRepo) GetByID(id string) (*entity.Draw, error) {
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.draws[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDrawRepo) Update(d *entity.Draw) error {
	if r.err != nil {
		return r.err
	}
	cp := *d
	r.draws[d.ID] = &cp
	return nil
}

func (r *fakeDrawRepo) List(shopID *string) ([]*entity.Draw, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Draw
	for _, d := range r.draws {
		if shopID == nil || d.ShopID == *shopID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeDrawRepo) ListByDateRange(shopID string, from, to time.Time) ([]*entity.Draw, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Draw
	for _, d := range r.draws {
		if d.ShopID == shopID && !d.Date.Before(from) && !d.Date.After(to) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeDrawRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.draws, id)
	return nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
	err       error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: map[string]*entity.Purchase{}}
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	if r.err != nil {
		return r.err
	}
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePurchaseRepo) Update(p *entity.Purchase) error {
	if r.err != nil {
		return r.err
	}
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) List(shopID *string) ([]*entity.Purchase, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Purchase
	for _, p := range r.purchases {
		if shopID == nil || p.ShopID == *shopID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakePurchaseRepo) ListOutside(shopID *string) ([]*entity.Purchase, error) {
	all, err := r.List(shopID)
	if err != nil {
		return nil, err
	}
	var out []*entity.Purchase
	for _, p := range all {
		if p.IsOutside {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) ListByDateRange(shopID string, from, to time.Time) ([]*entity.Purchase, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Purchase
	for _, p := range r.purchases {
		if p.ShopID == shopID && !p.Date.Before(from) && !p.Date.After(to) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakePurchaseRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.purchases, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
	// beforeCreate permite simular la carrera del find-or-create: se ejecuta
	// justo antes del insert.
	beforeCreate func()
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	for _, existing := range r.suppliers {
		if existing.Company == s.Company {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string, includeDeleted bool) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok || (!includeDeleted && s.DeletedAt != nil) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) GetByCompany(company string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Company == company && s.DeletedAt == nil {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	for _, existing := range r.suppliers {
		if existing.ID != s.ID && existing.Company == s.Company {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List(includeDeleted bool) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if includeDeleted || s.DeletedAt == nil {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) SoftDelete(id, actorID string) error {
	s, ok := r.suppliers[id]
	if !ok {
		return nil
	}
	now := time.Now()
	s.DeletedAt = &now
	s.UpdatedBy = &actorID
	return nil
}

func (r *fakeSupplierRepo) Restore(id, actorID string) error {
	s, ok := r.suppliers[id]
	if !ok {
		return nil
	}
	s.DeletedAt = nil
	s.UpdatedBy = &actorID
	return nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	delete(r.suppliers, id)
	return nil
}

type fakeShopRepo struct {
	shops map[string]*entity.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: map[string]*entity.Shop{}}
}

func (r *fakeShopRepo) Create(s *entity.Shop) error {
	cp := *s
	r.shops[s.ID] = &cp
	return nil
}

func (r *fakeShopRepo) GetByID(id string, includeDeleted bool) (*entity.Shop, error) {
	s, ok := r.shops[id]
	if !ok || (!includeDeleted && s.DeletedAt != nil) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeShopRepo) Update(s *entity.Shop) error {
	cp := *s
	r.shops[s.ID] = &cp
	return nil
}

func (r *fakeShopRepo) List(includeDeleted bool) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, s := range r.shops {
		if includeDeleted || s.DeletedAt == nil {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeShopRepo) SoftDelete(id, actorID string) error {
	s, ok := r.shops[id]
	if !ok {
		return nil
	}
	now := time.Now()
	s.DeletedAt = &now
	s.UpdatedBy = &actorID
	return nil
}

func (r *fakeShopRepo) Restore(id, actorID string) error {
	s, ok := r.shops[id]
	if !ok {
		return nil
	}
	s.DeletedAt = nil
	s.UpdatedBy = &actorID
	return nil
}

func (r *fakeShopRepo) Delete(id string) error {
	delete(r.shops, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string, includeDeleted bool) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || (!includeDeleted && u.DeletedAt != nil) {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(shopID *string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if shopID == nil || (u.ShopID != nil && *u.ShopID == *shopID) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Verified != out[j].Verified {
			return !out[i].Verified
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeUserRepo) SoftDelete(id, actorID string) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	now := time.Now()
	u.DeletedAt = &now
	u.UpdatedBy = &actorID
	return nil
}

func (r *fakeUserRepo) Restore(id, actorID string) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.DeletedAt = nil
	u.UpdatedBy = &actorID
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) DeactivateByShop(shopID, actorID string) error {
	now := time.Now()
	for _, u := range r.users {
		if u.ShopID != nil && *u.ShopID == shopID && u.DeletedAt == nil {
			u.DeletedAt = &now
			u.UpdatedBy = &actorID
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos en memoria
// (sin transacción real); failWith permite simular un rollback.
type fakeTxRunner struct {
	shops    repository.ShopRepository
	users    repository.UserRepository
	failWith error
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ShopRepository, repository.UserRepository) error) error {
	if t.failWith != nil {
		return t.failWith
	}
	return fn(t.shops, t.users)
}
