// Package policy concentra las reglas de acceso por rol: qué tienda puede
// tocar un actor, qué campos puede fijar él mismo (fecha efectiva, tienda) y
// sobre qué registros puede operar. Las reglas viven en una tabla de
// capacidades por rol en lugar de chequeos de pertenencia repetidos en cada
// handler.
package policy

import (
	"time"

	"github.com/andresfq/caja-api/internal/domain/entity"
)

// Actor identifica al usuario autenticado que ejecuta la operación.
// ShopID vacío solo para superadmin.
type Actor struct {
	ID     string
	Role   string
	ShopID string
}

// Capabilities es el conjunto estructurado de permisos de un rol.
type Capabilities struct {
	AllShops        bool // puede apuntar a cualquier tienda vía request
	OverrideDate    bool // puede fijar la fecha efectiva de draws/compras
	DeleteAnyInShop bool // puede borrar registros ajenos dentro de su tienda
	ManageUsers     bool // puede listar/crear/editar/verificar usuarios
	ManageShops     bool // puede administrar tiendas
	GrantSuperadmin bool // puede crear/promover superadmins
}

// Tabla rol → capacidades. Un rol desconocido resuelve al conjunto vacío.
var byRole = map[string]Capabilities{
	entity.RoleSuperadmin: {
		AllShops:        true,
		OverrideDate:    true,
		DeleteAnyInShop: true,
		ManageUsers:     true,
		ManageShops:     true,
		GrantSuperadmin: true,
	},
	entity.RoleAdmin: {
		OverrideDate:    true,
		DeleteAnyInShop: true,
		ManageUsers:     true,
	},
	entity.RoleEmployee: {},
}

// For resuelve las capacidades del actor (una sola vez por request).
func For(a Actor) Capabilities { return byRole[a.Role] }

// Authenticated indica si el actor trae identidad y rol válidos.
func (a Actor) Authenticated() bool {
	_, known := byRole[a.Role]
	return a.ID != "" && known
}

// EffectiveShop resuelve la tienda destino de una escritura: superadmin puede
// elegirla en el request; admin y employee quedan anclados a la suya sin
// importar lo que venga en el payload.
func EffectiveShop(a Actor, requested string) string {
	if For(a).AllShops && requested != "" {
		return requested
	}
	return a.ShopID
}

// EffectiveDate resuelve la fecha efectiva de un draw o compra: superadmin y
// admin pueden fijarla; a los employees se les estampa la hora del servidor,
// ignorando cualquier fecha enviada por el cliente. Fecha ausente = now.
func EffectiveDate(a Actor, requested time.Time, now time.Time) time.Time {
	if For(a).OverrideDate && !requested.IsZero() {
		return requested
	}
	return now
}

// ScopeShop devuelve el filtro de tienda para listados: nil = todas las
// tiendas (superadmin), si no la tienda propia del actor.
func ScopeShop(a Actor) *string {
	if For(a).AllShops {
		return nil
	}
	shop := a.ShopID
	return &shop
}

// CanSee indica si un registro de la tienda dada es visible para el actor.
func CanSee(a Actor, recordShopID string) bool {
	return For(a).AllShops || recordShopID == a.ShopID
}

// CanDeleteRecord decide el borrado de draws/compras: superadmin cualquiera;
// admin cualquiera dentro de su tienda; employee solo los que creó él mismo
// y dentro de su tienda.
func CanDeleteRecord(a Actor, recordShopID string, createdBy *string) bool {
	caps := For(a)
	if caps.AllShops {
		return true
	}
	if recordShopID != a.ShopID {
		return false
	}
	if caps.DeleteAnyInShop {
		return true
	}
	return createdBy != nil && *createdBy == a.ID
}

// CanManageUsers indica si el actor puede administrar usuarios.
func CanManageUsers(a Actor) bool { return For(a).ManageUsers }

// CanManageShops indica si el actor puede administrar tiendas.
func CanManageShops(a Actor) bool { return For(a).ManageShops }

// CanAssignRole valida el rol a asignar en alta/edición de usuarios: solo un
// superadmin puede crear o promover a superadmin.
func CanAssignRole(a Actor, targetRole string) bool {
	if targetRole == entity.RoleSuperadmin {
		return For(a).GrantSuperadmin
	}
	_, known := byRole[targetRole]
	return known
}

// UserShopFor resuelve la tienda de un usuario a crear/editar: un superadmin
// nuevo no lleva tienda; para el resto, quien no pueda apuntar a cualquier
// tienda asigna siempre la suya propia.
func UserShopFor(a Actor, requested string, targetRole string) *string {
	if targetRole == entity.RoleSuperadmin {
		return nil
	}
	shop := EffectiveShop(a, requested)
	if shop == "" {
		return nil
	}
	return &shop
}

// CanTouchUser limita verify/restore/deactivate/update de usuarios al
// alcance del actor: superadmin cualquiera, admin solo usuarios de su tienda.
func CanTouchUser(a Actor, target *entity.User) bool {
	if !For(a).ManageUsers {
		return false
	}
	if For(a).AllShops {
		return true
	}
	return target.ShopID != nil && *target.ShopID == a.ShopID
}
