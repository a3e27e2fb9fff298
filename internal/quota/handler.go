package quota

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pytutor/pytutor_service/internal/model"
)

type Handler struct {
	inspector *Inspector
}

func NewHandler(inspector *Inspector) *Handler { return &Handler{inspector: inspector} }

// CheckQuota reports the locally tracked usage for an API key. It never
// calls the provider, so checking quota costs nothing.
func (h *Handler) CheckQuota(c *fiber.Ctx) error {
	var req model.QuotaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Report{Error: "invalid request body"})
	}
	return c.JSON(h.inspector.Inspect(req.APIKey))
}
