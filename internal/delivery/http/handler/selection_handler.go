package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/pkg/validator"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// SelectionHandler exposes the category selection state machine.
type SelectionHandler struct {
	selection *usecase.SelectionUseCase
	logger    *zap.Logger
}

func NewSelectionHandler(selection *usecase.SelectionUseCase, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		selection: selection,
		logger:    logger,
	}
}

// GetSelection godoc
// @Summary Current selection
// @Description Returns the currently selected category, or null when nothing is selected.
// @Tags Selection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Router /api/v1/selection [get]
func (h *SelectionHandler) GetSelection(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.selectionResponse(), nil)
}

// PutSelection godoc
// @Summary Change the selection
// @Description Selects one of the four categories, or clears the selection with "none". Unknown tokens are rejected and leave the selection unchanged.
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body dto.SelectRequest true "Category token or none"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/selection [put]
func (h *SelectionHandler) PutSelection(c *fiber.Ctx) error {
	var req dto.SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if _, err := h.selection.Select(req.Category); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.selectionResponse(), nil)
}

func (h *SelectionHandler) selectionResponse() dto.SelectionResponse {
	resp := dto.SelectionResponse{
		ActiveCount: len(h.selection.Active()),
	}
	if current, ok := h.selection.Current(); ok {
		token := string(current)
		resp.Selected = &token
	}
	return resp
}
