package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrValidation          = errors.New("validación de campos fallida")
	ErrUnknownCalculator   = errors.New("calculadora desconocida")
	ErrUnsupportedLanguage = errors.New("idioma no soportado")
)
