package repository

import "github.com/jhoicas/Costeo-api/internal/domain/entity"

// ScenarioRepository define el puerto del almacén de escenarios: lista ordenada
// de instantáneas, solo-agregar hasta limpieza explícita. Las entradas nunca se
// mutan individualmente.
type ScenarioRepository interface {
	// Add captura una copia profunda del resultado con nombre autogenerado
	// "Scenario N" (N = conteo actual + 1).
	Add(result entity.SimulationResult) (entity.Scenario, error)
	List() ([]entity.Scenario, error)
	Clear() error
}
