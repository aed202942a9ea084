package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrValidation evento de movimiento mal formado; se rechaza al registrar, nunca se corrige en silencio.
	ErrValidation = errors.New("movimiento inválido")
	ErrConflict   = errors.New("conflicto con el estado actual")
)
