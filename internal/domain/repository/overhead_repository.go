package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// OverheadRepository define el puerto de lectura de perfiles de gastos
// indirectos por planta (DIP).
type OverheadRepository interface {
	GetByPlant(plant string) (*entity.OverheadProfile, error)
}
