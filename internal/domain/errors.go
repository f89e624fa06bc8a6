package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores los envuelven
// con %w y los handlers los mapean a códigos HTTP con errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
