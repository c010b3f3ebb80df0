package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// ScenarioStore almacén de escenarios en memoria: lista ordenada por inserción,
// solo-agregar hasta Clear. Es el único estado mutable de la sesión; el mutex
// serializa append/clear cuando el motor se expone como servicio.
type ScenarioStore struct {
	mu    sync.Mutex
	items []entity.Scenario
}

// NewScenarioStore construye un almacén vacío.
func NewScenarioStore() *ScenarioStore {
	return &ScenarioStore{}
}

// Add captura una copia profunda del resultado con nombre "Scenario N".
// N es el conteo actual + 1; tras Clear la numeración reinicia en 1, así que
// los nombres no son únicos entre limpiezas.
func (s *ScenarioStore) Add(result entity.SimulationResult) (entity.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := entity.Scenario{
		ID:         uuid.New().String(),
		Name:       fmt.Sprintf("Scenario %d", len(s.items)+1),
		CapturedAt: time.Now(),
		Result:     result.Clone(),
	}
	s.items = append(s.items, sc)

	out := sc
	out.Result = sc.Result.Clone()
	return out, nil
}

// List devuelve copias de los escenarios en orden de inserción.
func (s *ScenarioStore) List() ([]entity.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Scenario, len(s.items))
	for i, sc := range s.items {
		out[i] = sc
		out[i].Result = sc.Result.Clone()
	}
	return out, nil
}

// Clear vacía la lista; la numeración de nombres reinicia en 1.
func (s *ScenarioStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}
