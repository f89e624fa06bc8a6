// Package query contiene el núcleo de consulta del inventario: el lenguaje de
// filtros, el constructor de pipelines y la aritmética de paginación. Todo es
// puro (sin I/O); los adaptadores de persistencia compilan el resultado.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// PresenceField campo de salida cuya ausencia marca una unidad como "presente".
type PresenceField string

const (
	// FieldTransferedAt sello de transferencia bodega → tienda.
	FieldTransferedAt PresenceField = "transferedAt"
	// FieldSoldAt sello de venta en tienda.
	FieldSoldAt PresenceField = "soldAt"
)

// Predicate es la unión cerrada de condiciones que puede expresar el filtro
// por petición. Cada variante referencia un campo concreto del shape unido
// (artículo + producto); el adaptador decide cómo evaluarla.
type Predicate interface{ isPredicate() }

// BrandIn la marca del producto unido está en el conjunto. Names viene del
// filtro crudo; IDs lo resuelve la fachada contra el catálogo de marcas.
// Nombres que no resuelven dejan el conjunto vacío (no coincide con nada).
type BrandIn struct {
	Names []string
	IDs   []string
}

// ModelIn el modelo del producto unido está en el conjunto. Igual que BrandIn.
type ModelIn struct {
	Names []string
	IDs   []string
}

// SkuMatches coincidencia de patrón, insensible a mayúsculas, sobre el SKU
// del producto unido.
type SkuMatches struct {
	Pattern string
}

// SizeEquals talla exacta de la unidad.
type SizeEquals struct {
	Size int
}

// StillPresent el sello de salida (transferedAt o soldAt) está sin asignar,
// es decir la unidad sigue en la ubicación.
type StillPresent struct {
	Field PresenceField
}

func (BrandIn) isPredicate()      {}
func (ModelIn) isPredicate()      {}
func (SkuMatches) isPredicate()   {}
func (SizeEquals) isPredicate()   {}
func (StillPresent) isPredicate() {}

// ParseFilter convierte el objeto JSON de filtro de la petición en la lista
// normalizada de predicados. Filtro ausente o vacío devuelve lista vacía.
// Claves desconocidas se ignoran (compatibilidad hacia adelante); JSON mal
// formado, o un valor mal formado en una clave reconocida, es ErrInvalidInput.
//
// Los predicados salen siempre en orden canónico (brands, brandModels, sku,
// size, transferedAt, soldAt); el orden solo afecta el corte temprano de la
// evaluación, nunca el conjunto resultado.
func ParseFilter(raw string) ([]Predicate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("filtro mal formado: %w", domain.ErrInvalidInput)
	}

	var preds []Predicate

	if v, ok := fields["brands"]; ok {
		names, err := parseNameList(v, "brands")
		if err != nil {
			return nil, err
		}
		preds = append(preds, BrandIn{Names: names})
	}
	if v, ok := fields["brandModels"]; ok {
		names, err := parseNameList(v, "brandModels")
		if err != nil {
			return nil, err
		}
		preds = append(preds, ModelIn{Names: names})
	}
	if v, ok := fields["sku"]; ok {
		var pattern string
		if err := json.Unmarshal(v, &pattern); err != nil {
			return nil, fmt.Errorf("filtro sku mal formado: %w", domain.ErrInvalidInput)
		}
		if pattern != "" {
			preds = append(preds, SkuMatches{Pattern: pattern})
		}
	}
	if v, ok := fields["size"]; ok {
		var size int
		if err := json.Unmarshal(v, &size); err != nil {
			return nil, fmt.Errorf("filtro size mal formado: %w", domain.ErrInvalidInput)
		}
		preds = append(preds, SizeEquals{Size: size})
	}
	for _, key := range [...]struct {
		name  string
		field PresenceField
	}{
		{"transferedAt", FieldTransferedAt},
		{"soldAt", FieldSoldAt},
	} {
		v, ok := fields[key.name]
		if !ok {
			continue
		}
		var flag string
		if err := json.Unmarshal(v, &flag); err != nil {
			return nil, fmt.Errorf("filtro %s mal formado: %w", key.name, domain.ErrInvalidInput)
		}
		// "yes" pide las unidades cuyo sello está SIN asignar (aún presentes).
		if flag == "yes" {
			preds = append(preds, StillPresent{Field: key.field})
		}
	}

	return preds, nil
}

// parseNameList admite un arreglo de nombres. Un arreglo vacío produce un
// predicado que no coincide con nada, no una ausencia de filtro.
func parseNameList(v json.RawMessage, key string) ([]string, error) {
	var names []string
	if err := json.Unmarshal(v, &names); err != nil {
		return nil, fmt.Errorf("filtro %s mal formado: %w", key, domain.ErrInvalidInput)
	}
	return names, nil
}
