package dto

import "time"

// ScenarioResponse instantánea nombrada de un resultado de simulación.
type ScenarioResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	CapturedAt time.Time          `json:"captured_at"`
	Result     SimulationResponse `json:"result"`
}

// ScenarioListResponse listado de escenarios en orden de captura.
type ScenarioListResponse struct {
	Total     int                `json:"total"`
	Scenarios []ScenarioResponse `json:"scenarios"`
}
