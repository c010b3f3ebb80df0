package memory

import (
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// OverheadRepository perfiles de gastos indirectos por planta, en memoria.
type OverheadRepository struct {
	profiles map[string]entity.OverheadProfile
}

// NewOverheadRepository construye los perfiles desde los datos sembrados.
func NewOverheadRepository() *OverheadRepository {
	repo := &OverheadRepository{profiles: make(map[string]entity.OverheadProfile)}
	for _, o := range seedOverheads() {
		repo.profiles[o.Plant] = o
	}
	return repo
}

// GetByPlant devuelve el perfil de la planta o domain.ErrPlantNotFound.
func (r *OverheadRepository) GetByPlant(plant string) (*entity.OverheadProfile, error) {
	o, ok := r.profiles[plant]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plant)
	}
	return &o, nil
}
