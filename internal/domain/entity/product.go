package entity

import "time"

// Product representa una entrada del catálogo (referencia, no unidad física).
// Las unidades individuales son Article. El nombre derivado para listados es
// "{marca} - {modelo}" y se arma en la consulta, no se persiste.
type Product struct {
	ID           string
	Name         string
	DisplayName  string // "{brand.name} - {brandModel.name}", poblado por joins
	SKU          string // único
	ImageURL     string
	Color        string
	CreatedBy    string
	BrandID      string
	BrandModelID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
