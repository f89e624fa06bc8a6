package entity

import "time"

// Brand marca comercial; entidad de consulta simple (nombre único).
type Brand struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BrandModel modelo de una marca (ej. "Air Max" de "Nike"). Nombre único.
type BrandModel struct {
	ID        string
	Name      string
	BrandID   string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
