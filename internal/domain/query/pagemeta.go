package query

import "math"

// PageMeta metadatos de paginación del sobre de respuesta. Los campos se
// exponen tal cual al cliente, que muestra Page directamente.
type PageMeta struct {
	Limit           int    `json:"limit"`
	Offset          int    `json:"offset"`
	Page            int    `json:"page"`
	PageCount       int    `json:"pageCount"`
	ItemCount       int    `json:"itemCount"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	HasNextPage     bool   `json:"hasNextPage"`
	SearchQuery     string `json:"searchQuery"`
}

// defaultPageDivisor divisor cuando la petición no trae límite.
const defaultPageDivisor = 15

// ComputeMeta calcula los metadatos de página para un (limit, offset) pedido
// y el conteo autoritativo de ítems.
//
//	pageCount = ceil(itemCount / (limit | 15))
//	page      = ceil(pageCount - (itemCount-offset)/limit)
//
// El sustraendo colapsa a 0 (y page queda en pageCount) cuando limit es 0,
// offset es 0 o itemCount == offset. Para offsets alineados distintos de cero
// el resultado coincide con el clásico floor(offset/limit)+1; para offsets no
// alineados puede divergir, y eso es deliberado: los clientes muestran el
// valor histórico tal cual.
func ComputeMeta(limit, offset, itemCount int, searchQuery string) PageMeta {
	divisor := limit
	if divisor == 0 {
		divisor = defaultPageDivisor
	}
	pageCount := int(math.Ceil(float64(itemCount) / float64(divisor)))

	page := pageCount
	if limit != 0 && offset != 0 && itemCount != offset {
		tail := float64(itemCount-offset) / float64(limit)
		page = int(math.Ceil(float64(pageCount) - tail))
	}

	return PageMeta{
		Limit:           limit,
		Offset:          offset,
		Page:            page,
		PageCount:       pageCount,
		ItemCount:       itemCount,
		HasPreviousPage: page > 1,
		HasNextPage:     page < pageCount,
		SearchQuery:     searchQuery,
	}
}
