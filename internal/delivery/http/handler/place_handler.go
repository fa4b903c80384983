package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler serves the directory: category summaries, per-category place
// lists and the manual refresh trigger.
type PlaceHandler struct {
	directory *usecase.DirectoryUseCase
	selection *usecase.SelectionUseCase
	location  *time.Location
	logger    *zap.Logger
}

func NewPlaceHandler(
	directory *usecase.DirectoryUseCase,
	selection *usecase.SelectionUseCase,
	location *time.Location,
	logger *zap.Logger,
) *PlaceHandler {
	return &PlaceHandler{
		directory: directory,
		selection: selection,
		location:  location,
		logger:    logger,
	}
}

// GetCategories godoc
// @Summary Category summaries
// @Description Returns the open/total place counts of every category for summary badges.
// @Tags Places
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Router /api/v1/categories [get]
func (h *PlaceHandler) GetCategories(c *fiber.Ctx) error {
	summaries := h.directory.Summaries()

	return utils.SendSuccess(c, dto.CategoriesResponse{
		Categories: summaries,
	}, &utils.Meta{
		Total: len(summaries),
	})
}

// GetPlaces godoc
// @Summary Places of one category
// @Description Returns the normalized places of a category with their current open status, for list rendering.
// @Tags Places
// @Produce json
// @Param category path string true "Category" Enums(cafes, restaurants, parks, bars)
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places/{category} [get]
func (h *PlaceHandler) GetPlaces(c *fiber.Ctx) error {
	category, ok := domain.ParseCategory(c.Params("category"))
	if !ok {
		return utils.SendError(c, errors.ErrUnknownCategory)
	}

	places := h.directory.ListFor(category)
	result := make([]dto.PlaceResponse, 0, len(places))
	for _, p := range places {
		result = append(result, dto.NewPlaceResponse(p))
	}

	return utils.SendSuccess(c, dto.PlacesResponse{
		Category: string(category),
		Places:   result,
		Total:    len(result),
	}, &utils.Meta{
		Total: len(result),
	})
}

// Refresh godoc
// @Summary Re-evaluate the directory
// @Description Advances the evaluation instant to the current reference-timezone time, rebuilds all category lists and resyncs the markers of the active selection.
// @Tags Places
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RefreshResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/refresh [post]
func (h *PlaceHandler) Refresh(c *fiber.Ctx) error {
	at := domain.InstantAt(time.Now(), h.location)

	if err := h.directory.Refresh(c.Context(), at); err != nil {
		h.logger.Error("Manual refresh failed", zap.Error(err))
		return utils.SendError(c, errors.ErrSourceUnavailable)
	}

	h.selection.Resync()

	return utils.SendSuccess(c, dto.RefreshResponse{
		Instant: h.directory.Instant(),
		Counts:  h.directory.Summaries(),
	}, nil)
}
