package dto

import "github.com/shopspring/decimal"

// MaterialResponse material del catálogo de referencia.
type MaterialResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	UnitMeasure string          `json:"unit_measure"`
	NewPrice    decimal.Decimal `json:"new_price"`
	OldCost     decimal.Decimal `json:"old_cost"`
	OnHand      decimal.Decimal `json:"on_hand"`
}

// ProductResponse producto del catálogo con su BOM normalizada.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ListPrice    decimal.Decimal `json:"list_price"`
	TargetMargin decimal.Decimal `json:"target_margin"`
	Plant        string          `json:"plant"`
	BOM          []BOMLineDTO    `json:"bom"`
}

// PriceTrendPointDTO punto de la serie de precios de muestra.
type PriceTrendPointDTO struct {
	MaterialID string          `json:"material_id"`
	Period     string          `json:"period"`
	Price      decimal.Decimal `json:"price"`
}
