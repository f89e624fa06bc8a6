package dto

import "time"

// CreateBrandRequest alta explícita de marca.
type CreateBrandRequest struct {
	CreatedBy string `json:"createdBy"`
	Name      string `json:"name"`
}

// BrandResponse marca serializada.
type BrandResponse struct {
	ID        string    `json:"id"`
	CreatedBy string    `json:"createdBy"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateBrandModelRequest alta explícita de modelo.
type CreateBrandModelRequest struct {
	CreatedBy string `json:"createdBy"`
	Name      string `json:"name"`
}

// BrandModelResponse modelo serializado.
type BrandModelResponse struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brandId"`
	CreatedBy string    `json:"createdBy"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
