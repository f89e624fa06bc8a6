package dto

import "github.com/jhoicas/almacen-api/internal/domain/query"

// PageOptions opciones de página ya coaccionadas a número. La capa HTTP las
// arma desde los query params crudos (valores no numéricos son ErrInvalidInput
// antes de llegar aquí). Filter y Sort viajan como JSON crudo; los parsea el
// lenguaje de filtros del dominio.
type PageOptions struct {
	Limit       int
	Offset      int
	Skip        int
	Sort        string
	Filter      string
	SearchQuery string
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta alias del cálculo de paginación del dominio; se serializa tal cual.
type Meta = query.PageMeta
