// Package event define los eventos de dominio que se despachan de forma
// síncrona dentro de la misma transacción que los origina.
package event

import "time"

// ShopDeactivated se emite al desactivar una tienda. Su manejador debe
// ejecutarse dentro de la misma transacción: la desactivación de la tienda y
// la de sus usuarios se confirman o revierten juntas.
type ShopDeactivated struct {
	ShopID  string
	ActorID string
	At      time.Time
}
