package memory

import (
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// MaterialRepository catálogo de materiales en memoria. Solo lectura tras la
// construcción: las ediciones del usuario viajan como overrides por simulación
// y nunca mutan el catálogo.
type MaterialRepository struct {
	materials map[string]entity.Material
	order     []string
	rule      entity.SubstitutionRule
	trend     []entity.PriceTrendPoint
}

// NewMaterialRepository construye el catálogo desde los datos sembrados.
func NewMaterialRepository() *MaterialRepository {
	repo := &MaterialRepository{
		materials: make(map[string]entity.Material),
		rule:      seedSubstitutionRule(),
		trend:     seedPriceTrend(),
	}
	for _, m := range seedMaterials() {
		repo.materials[m.ID] = m
		repo.order = append(repo.order, m.ID)
	}
	return repo
}

// GetByID devuelve una copia del material o domain.ErrMaterialNotFound.
func (r *MaterialRepository) GetByID(id string) (*entity.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, id)
	}
	return &m, nil
}

// List devuelve los materiales en el orden del catálogo.
func (r *MaterialRepository) List() ([]entity.Material, error) {
	out := make([]entity.Material, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.materials[id])
	}
	return out, nil
}

// AsMap devuelve una copia del catálogo indexada por ID. Copia nueva en cada
// llamada: los overrides por simulación se aplican sobre ella sin tocar el
// catálogo.
func (r *MaterialRepository) AsMap() (map[string]entity.Material, error) {
	out := make(map[string]entity.Material, len(r.materials))
	for id, m := range r.materials {
		out[id] = m
	}
	return out, nil
}

// SubstitutionRule devuelve la regla cobre→aluminio sembrada.
func (r *MaterialRepository) SubstitutionRule() (entity.SubstitutionRule, error) {
	return r.rule, nil
}

// PriceTrend devuelve la serie estática de precios de muestra.
func (r *MaterialRepository) PriceTrend() ([]entity.PriceTrendPoint, error) {
	out := make([]entity.PriceTrendPoint, len(r.trend))
	copy(out, r.trend)
	return out, nil
}
