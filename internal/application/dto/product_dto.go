package dto

import "time"

// CreateProductRequest alta de producto. Brand y BrandModel se reciben por
// nombre y se resuelven contra el catálogo, creándolos si no existen.
type CreateProductRequest struct {
	CreatedBy  string `json:"createdBy"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	BrandModel string `json:"brandModel"`
	SKU        string `json:"sku"`
	ImageURL   string `json:"imageUrl"`
	Color      string `json:"color"`
}

// UpdateProductRequest edición parcial de producto.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	SKU      *string `json:"sku"`
	ImageURL *string `json:"imageUrl"`
	Color    *string `json:"color"`
}

// ProductResponse producto serializado. Name es el nombre derivado
// "{marca} - {modelo}" cuando el catálogo puede componerlo.
type ProductResponse struct {
	ID           string    `json:"id"`
	CreatedBy    string    `json:"createdBy"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	ImageURL     string    `json:"imageUrl"`
	Color        string    `json:"color"`
	BrandID      string    `json:"brandId"`
	BrandModelID string    `json:"brandModelId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductListResponse sobre de página del listado de productos.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}
