package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/memory"
)

func TestMaterialRepository_ReferenciaDesconocida(t *testing.T) {
	repo := memory.NewMaterialRepository()

	_, err := repo.GetByID("NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

// TestMaterialRepository_AsMapEsCopia: mutar el mapa devuelto no debe afectar
// el catálogo (los overrides por simulación se aplican sobre la copia).
func TestMaterialRepository_AsMapEsCopia(t *testing.T) {
	repo := memory.NewMaterialRepository()

	m, err := repo.AsMap()
	require.NoError(t, err)
	edited := m["CU-01"]
	edited.NewPrice = decimal.NewFromInt(1)
	m["CU-01"] = edited

	orig, err := repo.GetByID("CU-01")
	require.NoError(t, err)
	assert.True(t, orig.NewPrice.Equal(decimal.NewFromInt(880)),
		"el catálogo no debe mutarse a través de AsMap")
}

func TestProductRepository_BOMEsCopia(t *testing.T) {
	repo := memory.NewProductRepository()

	p, err := repo.GetByID("STB-5K")
	require.NoError(t, err)
	require.NotEmpty(t, p.BOM)
	p.BOM[0].Quantity = decimal.NewFromInt(999)

	again, err := repo.GetByID("STB-5K")
	require.NoError(t, err)
	assert.True(t, again.BOM[0].Quantity.Equal(decimal.NewFromFloat(2.5)),
		"la BOM del catálogo no debe mutarse a través de la copia")
}

func TestProductRepository_ReferenciaDesconocida(t *testing.T) {
	repo := memory.NewProductRepository()

	_, err := repo.GetByID("STB-99")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestOverheadRepository_PlantaDesconocida(t *testing.T) {
	repo := memory.NewOverheadRepository()

	_, err := repo.GetByPlant("PL-OESTE")
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)

	o, err := repo.GetByPlant("PL-NORTE")
	require.NoError(t, err)
	assert.True(t, o.FreightPerUnit.Equal(decimal.NewFromInt(45)))
}
