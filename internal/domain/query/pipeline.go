package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Relation relación que el resolvedor de joins puede incorporar al shape del
// artículo. Siempre se une con semántica externa (outer): la unidad sobrevive
// aunque la referencia cuelgue, con la relación ausente.
type Relation string

const (
	RelationProduct    Relation = "product"
	RelationBrand      Relation = "brand"
	RelationBrandModel Relation = "brandModel"
	RelationStore      Relation = "store"
)

// Stage etapa de un pipeline de consulta. Unión cerrada: MatchLocation, Join,
// MatchPredicate, Sort, Window.
type Stage interface{ isStage() }

// MatchLocation filtra por igualdad de ubicación. Con Warehouse y Store ambos
// activos la unidad coincide si cualquiera de las dos referencias apunta al id
// (vista combinada "donde esté ahora").
type MatchLocation struct {
	LocationID string
	Warehouse  bool
	Store      bool
}

// Join incorpora una relación al shape, aplanada a un solo registro opcional.
type Join struct {
	Relation Relation
}

// MatchPredicate aplica un predicado del lenguaje de filtros. Un predicado que
// referencia un campo inexistente en el shape unido simplemente no coincide;
// no es un error.
type MatchPredicate struct {
	Predicate Predicate
}

// SortKey criterio de orden sobre un campo del shape unido.
type SortKey struct {
	Field string
	Desc  bool
}

// Sort ordena el conjunto completo. Siempre precede a Window: ordenar después
// de recortar produciría páginas no deterministas.
type Sort struct {
	Keys []SortKey
}

// Window recorta a la ventana [Skip, Skip+Limit). Con el orden aplicado
// antes, truncar a Limit+Skip elementos y descartar los primeros Skip
// produce exactamente la misma página.
type Window struct {
	Limit int
	Skip  int
}

func (MatchLocation) isStage()  {}
func (Join) isStage()           {}
func (MatchPredicate) isStage() {}
func (Sort) isStage()           {}
func (Window) isStage()         {}

// Pipeline secuencia ordenada de etapas. El orden es significativo y fijo;
// lo produce Build, nadie lo reordena después.
type Pipeline []Stage

// BuildParams parámetros para armar el pipeline de listado de artículos.
type BuildParams struct {
	LocationID     string
	MatchWarehouse bool
	MatchStore     bool
	Predicates     []Predicate
	Sort           []SortKey
	Limit          int
	Skip           int
	// JoinStore incorpora la tienda al shape (listado combinado que puede
	// coincidir por cualquiera de las dos ubicaciones).
	JoinStore bool
}

// Build arma el pipeline en el orden fijo: match de ubicación, join de
// producto (con marca/modelo si algún predicado los referencia), join de
// tienda, predicados en el orden recibido, orden y por último la ventana.
func Build(p BuildParams) Pipeline {
	pipeline := Pipeline{
		MatchLocation{LocationID: p.LocationID, Warehouse: p.MatchWarehouse, Store: p.MatchStore},
		Join{Relation: RelationProduct},
	}

	for _, pred := range p.Predicates {
		switch pred.(type) {
		case BrandIn:
			pipeline = append(pipeline, Join{Relation: RelationBrand})
		case ModelIn:
			pipeline = append(pipeline, Join{Relation: RelationBrandModel})
		}
	}
	if p.JoinStore {
		pipeline = append(pipeline, Join{Relation: RelationStore})
	}

	for _, pred := range p.Predicates {
		pipeline = append(pipeline, MatchPredicate{Predicate: pred})
	}

	if len(p.Sort) > 0 {
		pipeline = append(pipeline, Sort{Keys: p.Sort})
	}
	pipeline = append(pipeline, Window{Limit: p.Limit, Skip: p.Skip})

	return pipeline
}

// ParseSort convierte el objeto JSON de orden de la petición ({"campo": 1|-1})
// en la lista de criterios, preservando el orden de aparición de las claves
// (un map perdería ese orden). Vacío devuelve nil; JSON mal formado o una
// dirección distinta de 1/-1 es ErrInvalidInput.
func ParseSort(raw string) ([]SortKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("orden mal formado: %w", domain.ErrInvalidInput)
	}

	var keys []SortKey
	for dec.More() {
		fieldTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("orden mal formado: %w", domain.ErrInvalidInput)
		}
		field, ok := fieldTok.(string)
		if !ok {
			return nil, fmt.Errorf("orden mal formado: %w", domain.ErrInvalidInput)
		}
		dirTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("orden mal formado: %w", domain.ErrInvalidInput)
		}
		num, ok := dirTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("orden de %q mal formado: %w", field, domain.ErrInvalidInput)
		}
		switch num.String() {
		case "1":
			keys = append(keys, SortKey{Field: field})
		case "-1":
			keys = append(keys, SortKey{Field: field, Desc: true})
		default:
			return nil, fmt.Errorf("dirección de orden de %q debe ser 1 o -1: %w", field, domain.ErrInvalidInput)
		}
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, fmt.Errorf("orden mal formado: %w", domain.ErrInvalidInput)
	}

	return keys, nil
}
