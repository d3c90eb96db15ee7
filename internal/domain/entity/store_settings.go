package entity

import "time"

// StoreSettings es la identidad de la tienda (fila única).
// Se imprime en la cabecera de los recibos.
type StoreSettings struct {
	ID        int
	Name      string
	TaxID     string // CNPJ
	UpdatedAt time.Time
}
