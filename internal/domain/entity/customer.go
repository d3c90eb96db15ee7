package entity

import "time"

// Customer representa un cliente de la tienda (opcional en ventas).
type Customer struct {
	ID        string
	Name      string
	WhatsApp  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
