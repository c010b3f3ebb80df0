package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/scenario"
)

// ScenarioHandler maneja las peticiones HTTP del almacén de escenarios.
type ScenarioHandler struct {
	uc *scenario.UseCase
}

// NewScenarioHandler construye el handler.
func NewScenarioHandler(uc *scenario.UseCase) *ScenarioHandler {
	return &ScenarioHandler{uc: uc}
}

// Capture godoc
// @Summary      Capturar escenario
// @Description  Calcula la simulación y guarda una instantánea inmutable con
//
//	nombre autogenerado ("Scenario N") para comparación posterior.
//
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulationRequest  true  "misma entrada que /api/simulations"
// @Success      201   {object}  dto.ScenarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scenarios [post]
func (h *ScenarioHandler) Capture(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sc, err := h.uc.Capture(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sc)
}

// List godoc
// @Summary      Listar escenarios capturados
// @Tags         scenarios
// @Produce      json
// @Success      200  {object}  dto.ScenarioListResponse
// @Router       /api/scenarios [get]
func (h *ScenarioHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Clear godoc
// @Summary      Vaciar el almacén de escenarios
// @Description  Elimina todos los escenarios; la numeración reinicia en 1.
// @Tags         scenarios
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/scenarios [delete]
func (h *ScenarioHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "escenarios eliminados"})
}
