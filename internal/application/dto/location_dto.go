package dto

import "time"

// CreateWarehouseRequest alta de bodega.
type CreateWarehouseRequest struct {
	CreatedBy string `json:"createdBy"`
	Name      string `json:"name"`
}

// UpdateWarehouseRequest edición parcial de bodega.
type UpdateWarehouseRequest struct {
	Name *string `json:"name"`
}

// WarehouseResponse bodega serializada.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	CreatedBy string    `json:"createdBy"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WarehouseListResponse sobre de página del listado de bodegas.
type WarehouseListResponse struct {
	Data []WarehouseResponse `json:"data"`
	Meta Meta                `json:"meta"`
}

// CreateStoreRequest alta de tienda.
type CreateStoreRequest struct {
	CreatedBy string `json:"createdBy"`
	Name      string `json:"name"`
}

// UpdateStoreRequest edición parcial de tienda.
type UpdateStoreRequest struct {
	Name *string `json:"name"`
}

// StoreResponse tienda serializada. Articles es la cantidad de unidades
// presentes (transferidas y sin vender) cuando el listado la calcula.
type StoreResponse struct {
	ID        string    `json:"id"`
	CreatedBy string    `json:"createdBy"`
	Name      string    `json:"name"`
	Articles  int       `json:"articles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoreListResponse sobre de página del listado de tiendas.
type StoreListResponse struct {
	Data []StoreResponse `json:"data"`
	Meta Meta            `json:"meta"`
}
