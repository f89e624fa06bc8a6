package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa una unidad física individual de un producto, rastreada
// desde su ingreso a bodega hasta su venta. WarehouseID y StoreID son las dos
// ubicaciones posibles; TransferedAt y SoldAt son los sellos de salida.
//
// Invariante: la unidad está "presente" en bodega si TransferedAt es nil, y
// presente en tienda si StoreID está asignado y SoldAt es nil. SoldAt implica
// que TransferedAt fue sellado antes; eso lo garantizan las rutas de escritura,
// los lectores no lo asumen.
type Article struct {
	ID             string
	CreatedBy      string
	ProductID      string
	WarehouseID    string  // bodega de origen; se conserva tras la transferencia
	StoreID        *string // nil hasta que la unidad se transfiere a tienda
	WarehousePrice decimal.Decimal
	TransferPrice  decimal.Decimal
	StorePrice     decimal.Decimal
	SellingPrice   *decimal.Decimal // precio final; nil mientras no se venda
	Size           int
	SoldAt         *time.Time
	TransferedAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InWarehouse indica si la unidad cuenta para el inventario vivo de su bodega.
func (a *Article) InWarehouse() bool {
	return a.WarehouseID != "" && a.TransferedAt == nil
}

// InStore indica si la unidad cuenta para el inventario vivo de su tienda.
func (a *Article) InStore() bool {
	return a.StoreID != nil && a.SoldAt == nil
}
