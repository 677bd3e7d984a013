package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter as a positive integer id. On
// failure it writes a 404 response with the given resource message
// (an unparsable id behaves like a lookup miss) and returns false;
// callers should then return nil.
func parseID(c *fiber.Ctx, param, notFoundMsg string) (int, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError(notFoundMsg))
		return 0, false
	}
	return id, true
}
