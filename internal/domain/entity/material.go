package entity

import "github.com/shopspring/decimal"

// Material representa una materia prima del catálogo de estabilizadores.
// NewPrice es el precio cotizado vigente; OldCost el costo promedio previo del
// stock en bodega. La cantidad por unidad terminada vive en la BOM del producto
// (modelo normalizado), no en el material.
type Material struct {
	ID          string
	Name        string
	UnitMeasure string
	NewPrice    decimal.Decimal // precio unitario cotizado (>= 0)
	OldCost     decimal.Decimal // costo promedio anterior (>= 0)
	OnHand      decimal.Decimal // existencia en bodega (>= 0)
}
