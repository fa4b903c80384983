package usecase

import (
	"sync"

	"github.com/google/uuid"
	"github.com/places-directory/internal/domain"
	"go.uber.org/zap"
)

// MarkerUseCase reconciles the rendered marker set against the active place
// subset and owns nothing else: camera state lives here only for the map
// collaborator to read and write, and no sync path ever touches it.
type MarkerUseCase struct {
	logger *zap.Logger

	mu       sync.Mutex
	rendered map[string]domain.Marker // keyed by place id
	order    []string
	camera   domain.CameraState
}

func NewMarkerUseCase(camera domain.CameraState, logger *zap.Logger) *MarkerUseCase {
	return &MarkerUseCase{
		logger:   logger,
		rendered: make(map[string]domain.Marker),
		camera:   camera,
	}
}

// Sync brings the rendered set to exactly the active subset's place
// identities. Markers whose place is unchanged keep their handle; a place
// whose open status flipped is re-added so its color changes. Calling Sync
// twice with the same subset yields an empty delta the second time.
func (uc *MarkerUseCase) Sync(active []domain.Place) domain.MarkerDelta {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make(map[string]domain.Marker, len(active))
	order := make([]string, 0, len(active))
	var delta domain.MarkerDelta

	for _, p := range active {
		if _, dup := next[p.ID]; dup {
			// Duplicate ids are tolerated upstream; one marker per identity.
			continue
		}

		prev, exists := uc.rendered[p.ID]
		if exists && prev.Open == p.Open && prev.Coordinate == p.Coordinate {
			next[p.ID] = prev
		} else {
			marker := domain.Marker{
				Handle:     uuid.NewString(),
				PlaceID:    p.ID,
				Coordinate: p.Coordinate,
				Open:       p.Open,
			}
			next[p.ID] = marker
			delta.Added = append(delta.Added, marker)
			if exists {
				delta.Removed = append(delta.Removed, prev)
			}
		}
		order = append(order, p.ID)
	}

	for id, m := range uc.rendered {
		if _, keep := next[id]; !keep {
			delta.Removed = append(delta.Removed, m)
		}
	}

	uc.rendered = next
	uc.order = order

	uc.logger.Debug("Marker set reconciled",
		zap.Int("rendered", len(next)),
		zap.Int("added", len(delta.Added)),
		zap.Int("removed", len(delta.Removed)))

	return delta
}

// Markers returns the rendered set in active-subset order.
func (uc *MarkerUseCase) Markers() []domain.Marker {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	markers := make([]domain.Marker, 0, len(uc.order))
	for _, id := range uc.order {
		markers = append(markers, uc.rendered[id])
	}
	return markers
}

// Camera returns the current camera state.
func (uc *MarkerUseCase) Camera() domain.CameraState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.camera
}

// SetCamera mutates the camera state. Only the user-interaction path calls
// this; marker reconciliation never does.
func (uc *MarkerUseCase) SetCamera(camera domain.CameraState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.camera = camera
}
