package scenario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/scenario"
	"github.com/jhoicas/Costeo-api/internal/application/simulation"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/memory"
)

func newUseCase() *scenario.UseCase {
	sim := simulation.NewUseCase(
		memory.NewProductRepository(),
		memory.NewMaterialRepository(),
		memory.NewOverheadRepository(),
		decimal.NewFromInt(10000),
	)
	return scenario.NewUseCase(sim, memory.NewScenarioStore())
}

func forecast(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// TestCapture_CalculaYNombra: capturar calcula la simulación y asigna el
// nombre secuencial.
func TestCapture_CalculaYNombra(t *testing.T) {
	uc := newUseCase()

	first, err := uc.Capture(dto.SimulationRequest{ProductID: "STB-5K", ForecastUnits: forecast(10000)})
	require.NoError(t, err)
	assert.Equal(t, "Scenario 1", first.Name)
	assert.True(t, first.Result.TotalCost.Equal(decimal.NewFromFloat(5529.9145)),
		"total %s", first.Result.TotalCost)

	second, err := uc.Capture(dto.SimulationRequest{ProductID: "STB-10K"})
	require.NoError(t, err)
	assert.Equal(t, "Scenario 2", second.Name)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "STB-5K", list.Scenarios[0].Result.ProductID)
	assert.Equal(t, "STB-10K", list.Scenarios[1].Result.ProductID)
}

// TestCapture_ErrorNoAlmacena: una petición inválida no debe dejar rastro en
// el almacén.
func TestCapture_ErrorNoAlmacena(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Capture(dto.SimulationRequest{ProductID: "STB-99"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

// TestClear_ReiniciaNumeracion: tras limpiar, el siguiente escenario vuelve a
// llamarse "Scenario 1".
func TestClear_ReiniciaNumeracion(t *testing.T) {
	uc := newUseCase()
	_, _ = uc.Capture(dto.SimulationRequest{ProductID: "STB-5K"})
	_, _ = uc.Capture(dto.SimulationRequest{ProductID: "STB-5K"})

	require.NoError(t, uc.Clear())

	sc, err := uc.Capture(dto.SimulationRequest{ProductID: "STB-5K"})
	require.NoError(t, err)
	assert.Equal(t, "Scenario 1", sc.Name)
}
