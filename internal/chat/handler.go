package chat

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pytutor/pytutor_service/internal/model"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Chat answers an explanation query. Provider failures are encoded in the
// response text, the HTTP status stays 200.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ChatResponse{Error: "invalid request body"})
	}

	text := h.svc.Answer(c.UserContext(), Params{
		Topic:            req.Topic,
		Language:         req.Language,
		Model:            req.Model,
		Query:            req.Query,
		FamiliarityLevel: req.FamiliarityLevel,
		ConversationMode: req.ConversationMode,
		APIKey:           req.APIKey,
	})

	return c.JSON(model.ChatResponse{Response: text})
}
