package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores de referencia (producto/material/planta desconocidos) fallan rápido;
// las condiciones numéricas de borde nunca son errores: el motor define fallbacks.
var (
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrMaterialNotFound = errors.New("material no encontrado")
	ErrPlantNotFound    = errors.New("planta sin perfil de gastos indirectos")
	ErrInvalidInput     = errors.New("entrada inválida")
)
