package handlers

import (
	"net/http"
	"strings"

	"opsintel/internal/dto"
	"opsintel/internal/errors"
	"opsintel/internal/models"
	"opsintel/internal/services"

	"github.com/labstack/echo/v4"
)

// AssistantHandler serves the natural-language question endpoints
type AssistantHandler struct {
	assistantService   services.AssistantServiceInterface
	defaultMode        models.EngineMode
	interpretByDefault bool
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService services.AssistantServiceInterface, defaultMode models.EngineMode, interpretByDefault bool) *AssistantHandler {
	return &AssistantHandler{
		assistantService:   assistantService,
		defaultMode:        defaultMode,
		interpretByDefault: interpretByDefault,
	}
}

// Ask answers a question with the routed or forced engine
// @Summary Ask a question
// @Description Routes the question to the SQL or tabular engine and optionally interprets the result
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} SuccessResponse{data=dto.AskResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "QUERY_001 - Generated query rejected"
// @Failure 502 {object} errors.ErrorResponse "QUERY_005 - Language model failure"
// @Failure 503 {object} errors.ErrorResponse "QUERY_004 - No engine available"
// @Router /api/v1/assistant/ask [post]
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req dto.AskRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	mode := h.defaultMode
	if req.Mode != "" {
		mode = models.EngineMode(strings.ToLower(strings.TrimSpace(req.Mode)))
	}

	interpret := h.interpretByDefault
	if req.Interpret != nil {
		interpret = *req.Interpret
	}

	answer, err := h.assistantService.Ask(c.Request().Context(), req.Question, mode, interpret)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AskResponse{Answer: answer, Interpreted: interpret},
	})
}

// Compare runs the question on both engines
// @Summary Compare engines
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Question"
// @Success 200 {object} SuccessResponse{data=models.EngineComparison}
// @Failure 503 {object} errors.ErrorResponse "QUERY_004 - Both engines are required"
// @Router /api/v1/assistant/compare [post]
func (h *AssistantHandler) Compare(c echo.Context) error {
	var req dto.CompareRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	comparison, err := h.assistantService.CompareEngines(c.Request().Context(), req.Question)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: comparison})
}
