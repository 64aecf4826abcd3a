package inventory

import "time"

// InventoryItem representa un producto del stock de la clínica.
// Quantity y Threshold son punteros: el cliente web original permitía
// registrar items sin stock ni umbral definidos, y las reglas del dashboard
// distinguen "cero" de "ausente".
// ExpiryDate viaja como YYYY-MM-DD (puede venir vacía o mal formada).
type InventoryItem struct {
	ID string

	Name     string
	Category string
	Unit     string

	Quantity  *int
	Threshold *int

	ExpiryDate string

	CreatedAt time.Time
	UpdatedAt time.Time
}
