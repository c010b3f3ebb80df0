package scenario

import (
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/simulation"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// UseCase captura y lista escenarios: instantáneas inmutables de resultados de
// simulación para comparación lado a lado.
type UseCase struct {
	sim   *simulation.UseCase
	store repository.ScenarioRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(sim *simulation.UseCase, store repository.ScenarioRepository) *UseCase {
	return &UseCase{sim: sim, store: store}
}

// Capture calcula la simulación y agrega una copia profunda del resultado al
// almacén con nombre autogenerado.
func (uc *UseCase) Capture(in dto.SimulationRequest) (*dto.ScenarioResponse, error) {
	result, err := uc.sim.ComputeResult(in)
	if err != nil {
		return nil, err
	}
	sc, err := uc.store.Add(*result)
	if err != nil {
		return nil, err
	}
	out := toScenarioResponse(sc)
	return &out, nil
}

// List devuelve los escenarios capturados en orden de inserción.
func (uc *UseCase) List() (*dto.ScenarioListResponse, error) {
	items, err := uc.store.List()
	if err != nil {
		return nil, err
	}
	out := &dto.ScenarioListResponse{
		Total:     len(items),
		Scenarios: make([]dto.ScenarioResponse, 0, len(items)),
	}
	for _, sc := range items {
		out.Scenarios = append(out.Scenarios, toScenarioResponse(sc))
	}
	return out, nil
}

// Clear vacía el almacén; la numeración de nombres reinicia en 1.
func (uc *UseCase) Clear() error {
	return uc.store.Clear()
}

func toScenarioResponse(sc entity.Scenario) dto.ScenarioResponse {
	return dto.ScenarioResponse{
		ID:         sc.ID,
		Name:       sc.Name,
		CapturedAt: sc.CapturedAt,
		Result:     simulation.ToResponse(sc.Result),
	}
}
