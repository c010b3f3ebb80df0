package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// MaterialRepository define el puerto de lectura del catálogo de materiales (DIP).
// El catálogo es dato de referencia estático: solo lectura; las ediciones del
// usuario viajan como overrides por simulación, nunca mutan el catálogo.
type MaterialRepository interface {
	GetByID(id string) (*entity.Material, error)
	List() ([]entity.Material, error)
	// AsMap devuelve el catálogo indexado por ID para lookups del motor.
	AsMap() (map[string]entity.Material, error)
	// SubstitutionRule devuelve la regla cobre→aluminio del catálogo.
	SubstitutionRule() (entity.SubstitutionRule, error)
	// PriceTrend devuelve la serie estática de precios de muestra.
	PriceTrend() ([]entity.PriceTrendPoint, error)
}
