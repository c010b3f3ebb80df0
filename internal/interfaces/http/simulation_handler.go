package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/simulation"
)

// SimulationHandler maneja las peticiones HTTP de simulación de costeo.
type SimulationHandler struct {
	uc *simulation.UseCase
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc *simulation.UseCase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

// Compute godoc
// @Summary      Calcular simulación de costeo
// @Description  Calcula costo unitario total, margen y precio recomendado para un
//
//	producto. Mode "procurement" (pronóstico → plan de compras a costo
//	promedio móvil) o "price_shock" (choques de precio + sustitución
//	cobre→aluminio). Los overrides nunca mutan el catálogo.
//
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulationRequest  true  "product_id, mode, forecast_units, price_shocks, substitution_fraction, overrides"
// @Success      200   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/simulations [post]
func (h *SimulationHandler) Compute(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Compute(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(res)
}
