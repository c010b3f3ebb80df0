package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Costeo-api/internal/application/catalog"
)

// CatalogHandler maneja las lecturas del catálogo de referencia (materiales,
// productos, tendencia de precios) para poblar la capa de presentación.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListMaterials godoc
// @Summary      Listar materiales del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/catalog/materials [get]
func (h *CatalogHandler) ListMaterials(c *fiber.Ctx) error {
	list, err := h.uc.ListMaterials()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "materials": list})
}

// ListProducts godoc
// @Summary      Listar productos con su BOM
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.uc.ListProducts()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "products": list})
}

// GetProduct godoc
// @Summary      Obtener un producto por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "ID del producto (ej. STB-5K)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	p, err := h.uc.GetProduct(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(p)
}

// PriceTrend godoc
// @Summary      Serie de precios de muestra
// @Description  Datos estáticos sembrados para la vista de tendencia; no hay
//
//	consulta de históricos reales.
//
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.PriceTrendPointDTO
// @Router       /api/catalog/price-trend [get]
func (h *CatalogHandler) PriceTrend(c *fiber.Ctx) error {
	trend, err := h.uc.PriceTrend()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(trend), "points": trend})
}
