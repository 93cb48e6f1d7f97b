package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/domain"
)

type CommonHandler struct{}

// AppConfig exposes the closed enumerations the client builds its
// forms and filters from.
func (h *CommonHandler) AppConfig(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "App configuration fetched successfully.", fiber.Map{
		"productCategories": domain.Categories,
		"discountValues":    domain.DiscountValues,
	})
}
