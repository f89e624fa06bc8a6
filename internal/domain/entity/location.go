package entity

import "time"

// Warehouse bodega: ubicación de origen de las unidades (Article).
type Warehouse struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store tienda: ubicación destino de las unidades transferidas.
type Store struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
