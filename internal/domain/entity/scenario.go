package entity

import "time"

// Scenario instantánea nombrada de un resultado de simulación, retenida para
// comparación. El resultado es una copia profunda: cambios posteriores en el
// catálogo o en los parámetros no alteran escenarios ya capturados.
type Scenario struct {
	ID         string
	Name       string // "Scenario N"; N reinicia en 1 tras limpiar la lista
	CapturedAt time.Time
	Result     SimulationResult
}
