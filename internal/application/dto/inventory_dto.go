package dto

// InventoryRow existencias de un producto en una ubicación: cuántas unidades
// siguen presentes y en qué tallas.
type InventoryRow struct {
	Product *ProductResponse `json:"product"`
	Total   int              `json:"total"`
	Sizes   []int            `json:"sizes"`
}

// InventoryResponse sobre de página de la vista agrupada por producto.
type InventoryResponse struct {
	Data []InventoryRow `json:"data"`
	Meta Meta           `json:"meta"`
}
