package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeQuantity cuántas unidades de cada talla ingresan en un alta masiva.
type SizeQuantity struct {
	Size     int `json:"size"`
	Quantity int `json:"quantity"`
}

// CreateArticleRequest alta de unidades contra una bodega. Se crea una unidad
// por cada ejemplar pedido en Sizes.
type CreateArticleRequest struct {
	CreatedBy      string          `json:"createdBy"`
	Product        string          `json:"product"`
	Warehouse      string          `json:"warehouse"`
	WarehousePrice decimal.Decimal `json:"warehousePrice"`
	TransferPrice  decimal.Decimal `json:"transferPrice"`
	StorePrice     decimal.Decimal `json:"storePrice"`
	Sizes          []SizeQuantity  `json:"sizes"`
}

// UpdateArticleRequest edición parcial de una unidad.
type UpdateArticleRequest struct {
	WarehousePrice *decimal.Decimal `json:"warehousePrice"`
	TransferPrice  *decimal.Decimal `json:"transferPrice"`
	StorePrice     *decimal.Decimal `json:"storePrice"`
	Size           *int             `json:"size"`
}

// TransferArticleRequest transferencia bodega → tienda.
type TransferArticleRequest struct {
	Store         string           `json:"store"`
	TransferPrice *decimal.Decimal `json:"transferPrice"`
}

// TransferToWarehouseRequest reversa tienda → bodega.
type TransferToWarehouseRequest struct {
	Warehouse string `json:"warehouse"`
}

// SellArticleRequest venta de una unidad en tienda.
type SellArticleRequest struct {
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// ArticleResponse unidad serializada con sus relaciones aplanadas cuando el
// listado las une. Product y Store ausentes (nil) si la referencia cuelga.
type ArticleResponse struct {
	ID             string           `json:"id"`
	CreatedBy      string           `json:"createdBy"`
	ProductID      string           `json:"productId"`
	WarehouseID    string           `json:"warehouseId"`
	StoreID        *string          `json:"storeId,omitempty"`
	Product        *ProductResponse `json:"product,omitempty"`
	Store          *StoreResponse   `json:"store,omitempty"`
	WarehousePrice decimal.Decimal  `json:"warehousePrice"`
	TransferPrice  decimal.Decimal  `json:"transferPrice"`
	StorePrice     decimal.Decimal  `json:"storePrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice,omitempty"`
	Size           int              `json:"size"`
	SoldAt         *time.Time       `json:"soldAt,omitempty"`
	TransferedAt   *time.Time       `json:"transferedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ArticleListResponse sobre de página del listado de unidades.
type ArticleListResponse struct {
	Data []ArticleResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

// AcdataResponse datos para autocompletar los filtros del cliente.
type AcdataResponse struct {
	Brands      []string `json:"brands"`
	BrandModels []string `json:"brandModels"`
}
