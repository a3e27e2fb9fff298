package quiz

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pytutor/pytutor_service/internal/model"
)

type Response struct {
	Questions []Question `json:"questions"`
	Error     string     `json:"error,omitempty"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Generate builds a quiz for the requested topic. The caller must supply
// its own api_key; an empty extraction surfaces as an error message with
// an empty questions list, never a 5xx.
func (h *Handler) Generate(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Questions: []Question{}, Error: "invalid request body"})
	}

	if req.APIKey == "" {
		return c.JSON(Response{
			Questions: []Question{},
			Error:     "API key is required for quiz generation. Please enter your Google Gemini API key.",
		})
	}

	questions := h.svc.Generate(c.UserContext(), GenerateParams{
		Topic:            req.Topic,
		Language:         req.Language,
		Model:            req.Model,
		FamiliarityLevel: req.FamiliarityLevel,
		APIKey:           req.APIKey,
	})

	if len(questions) == 0 {
		return c.JSON(Response{
			Questions: []Question{},
			Error:     "Failed to generate quiz questions. Please try again with a different topic.",
		})
	}

	return c.JSON(Response{Questions: questions})
}
