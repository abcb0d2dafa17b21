package postgres

import (
	"time"

	"github.com/andresfq/caja-api/internal/domain/entity"
)

// refScan recibe las columnas de un LEFT JOIN contra users para los campos
// de auditoría; todas nullable porque la referencia puede no existir.
type refScan struct {
	id        *string
	firstName *string
	lastName  *string
	email     *string
}

func (s refScan) ref() *entity.UserRef {
	if s.id == nil {
		return nil
	}
	return &entity.UserRef{
		ID:        *s.id,
		FirstName: deref(s.firstName),
		LastName:  deref(s.lastName),
		Email:     deref(s.email),
	}
}

// shopScan recibe las columnas de un LEFT JOIN contra shops.
type shopScan struct {
	id        *string
	name      *string
	createdAt *time.Time
	updatedAt *time.Time
	deletedAt *time.Time
}

func (s shopScan) shop() *entity.Shop {
	if s.id == nil {
		return nil
	}
	sh := &entity.Shop{ID: *s.id, Name: deref(s.name), DeletedAt: s.deletedAt}
	if s.createdAt != nil {
		sh.CreatedAt = *s.createdAt
	}
	if s.updatedAt != nil {
		sh.UpdatedAt = *s.updatedAt
	}
	return sh
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
