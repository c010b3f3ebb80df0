package entity

import "github.com/shopspring/decimal"

// BOMLine una línea de la lista de materiales: cuánto material requiere una
// unidad terminada. Varias líneas por producto; cada línea referencia
// exactamente un material.
type BOMLine struct {
	MaterialID  string
	Quantity    decimal.Decimal // cantidad por unidad terminada (>= 0)
	UnitMeasure string
}

// Product representa un estabilizador del catálogo.
// ListPrice y TargetMargin pueden sobre-escribirse por simulación sin mutar
// el registro del catálogo.
type Product struct {
	ID           string
	Name         string
	ListPrice    decimal.Decimal // precio de lista (>= 0)
	TargetMargin decimal.Decimal // margen objetivo, fracción en [0, 1)
	Plant        string          // referencia al perfil de gastos indirectos
	BOM          []BOMLine
}
