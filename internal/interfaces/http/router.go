package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Costeo-api/internal/application/catalog"
	"github.com/jhoicas/Costeo-api/internal/application/scenario"
	"github.com/jhoicas/Costeo-api/internal/application/simulation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *catalog.UseCase
	SimulationUC *simulation.UseCase
	ScenarioUC   *scenario.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de referencia (solo lectura)
	cat := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	cat.Get("/materials", catalogHandler.ListMaterials)
	cat.Get("/products", catalogHandler.ListProducts)
	cat.Get("/products/:id", catalogHandler.GetProduct)
	cat.Get("/price-trend", catalogHandler.PriceTrend)

	// Simulaciones (cálculo puro, sin estado)
	simulationHandler := NewSimulationHandler(deps.SimulationUC)
	api.Post("/simulations", simulationHandler.Compute)

	// Escenarios (único estado mutable de la sesión)
	scenarios := api.Group("/scenarios")
	scenarioHandler := NewScenarioHandler(deps.ScenarioUC)
	scenarios.Post("/", scenarioHandler.Capture)
	scenarios.Get("/", scenarioHandler.List)
	scenarios.Delete("/", scenarioHandler.Clear)
}
