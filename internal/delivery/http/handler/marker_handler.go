package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/pkg/validator"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// MarkerHandler serves the rendered marker set and the camera state the map
// collaborator owns.
type MarkerHandler struct {
	markers   *usecase.MarkerUseCase
	selection *usecase.SelectionUseCase
	logger    *zap.Logger
}

func NewMarkerHandler(
	markers *usecase.MarkerUseCase,
	selection *usecase.SelectionUseCase,
	logger *zap.Logger,
) *MarkerHandler {
	return &MarkerHandler{
		markers:   markers,
		selection: selection,
		logger:    logger,
	}
}

// GetMarkers godoc
// @Summary Rendered markers
// @Description Returns the full rendered marker set of the active selection, one marker per place, colored by open status.
// @Tags Markers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MarkersResponse}
// @Router /api/v1/markers [get]
func (h *MarkerHandler) GetMarkers(c *fiber.Ctx) error {
	markers := h.markers.Markers()
	result := make([]dto.MarkerResponse, 0, len(markers))
	for _, m := range markers {
		result = append(result, dto.NewMarkerResponse(m))
	}

	return utils.SendSuccess(c, dto.MarkersResponse{
		Markers: result,
		Total:   len(result),
	}, &utils.Meta{
		Total: len(result),
	})
}

// SyncMarkers godoc
// @Summary Reconcile markers
// @Description Re-reconciles the rendered marker set against the active selection and returns the add/remove deltas for incremental renderers.
// @Tags Markers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MarkerSyncResponse}
// @Router /api/v1/markers/sync [post]
func (h *MarkerHandler) SyncMarkers(c *fiber.Ctx) error {
	delta := h.selection.Resync()

	added := make([]dto.MarkerResponse, 0, len(delta.Added))
	for _, m := range delta.Added {
		added = append(added, dto.NewMarkerResponse(m))
	}
	removed := make([]dto.MarkerResponse, 0, len(delta.Removed))
	for _, m := range delta.Removed {
		removed = append(removed, dto.NewMarkerResponse(m))
	}

	return utils.SendSuccess(c, dto.MarkerSyncResponse{
		Added:   added,
		Removed: removed,
		Total:   len(h.markers.Markers()),
	}, nil)
}

// GetCamera godoc
// @Summary Camera state
// @Description Returns the map camera state (center, zoom, pitch).
// @Tags Camera
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CameraResponse}
// @Router /api/v1/camera [get]
func (h *MarkerHandler) GetCamera(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.NewCameraResponse(h.markers.Camera()), nil)
}

// PutCamera godoc
// @Summary Move the camera
// @Description Updates the camera state. This models user interaction with the map; marker syncs never change the camera.
// @Tags Camera
// @Accept json
// @Produce json
// @Param request body dto.CameraRequest true "Camera state"
// @Success 200 {object} utils.SuccessResponse{data=dto.CameraResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/camera [put]
func (h *MarkerHandler) PutCamera(c *fiber.Ctx) error {
	var req dto.CameraRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCamera)
	}

	h.markers.SetCamera(domain.CameraState{
		Center: domain.Coordinate{Lon: req.CenterLng, Lat: req.CenterLat},
		Zoom:   req.Zoom,
		Pitch:  req.Pitch,
	})

	return utils.SendSuccess(c, dto.NewCameraResponse(h.markers.Camera()), nil)
}
