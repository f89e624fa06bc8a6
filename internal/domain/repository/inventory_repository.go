package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/query"
)

// ProductGroup fila del inventario agrupado por producto en una ubicación.
// Total cuenta solo las unidades cuyo sello de presencia está sin asignar;
// Sizes lista las tallas de exactamente esas unidades. Product es nil si la
// referencia del grupo cuelga (producto borrado): el grupo igual se informa.
type ProductGroup struct {
	ProductID string
	Total     int
	Sizes     []int
	Product   *entity.Product
}

// GroupParams parámetros de la agregación de inventario. Presence decide
// tanto la columna de ubicación como el sello: FieldTransferedAt agrupa las
// unidades de una bodega, FieldSoldAt las de una tienda.
type GroupParams struct {
	LocationID string
	Presence   query.PresenceField
	// SkuPattern patrón insensible a mayúsculas aplicado DESPUÉS del join de
	// producto; vacío no filtra.
	SkuPattern string
	Sort       []query.SortKey
	Limit      int
	Skip       int
}

// InventoryRepository puerto de las vistas de inventario agrupado.
type InventoryRepository interface {
	// GroupByProduct agrupa las unidades de la ubicación por producto y
	// devuelve la ventana ordenada (por defecto Total ascendente: primero lo
	// que se está agotando).
	GroupByProduct(ctx context.Context, p GroupParams) ([]ProductGroup, error)
	// CountDistinctProducts cuenta los productos distintos que alguna vez
	// estuvieron en la ubicación, sin filtros: es el universo de paginación
	// aunque un filtro de sku reduzca las filas devueltas.
	CountDistinctProducts(ctx context.Context, locationID string, presence query.PresenceField) (int, error)
}
