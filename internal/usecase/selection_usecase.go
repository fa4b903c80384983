package usecase

import (
	"sync"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

// SelectionUseCase is the category selection state machine: either nothing is
// selected or exactly one category is. Every transition re-derives the active
// subset from the directory and pushes it to the marker synchronizer.
type SelectionUseCase struct {
	directory *DirectoryUseCase
	markers   *MarkerUseCase
	logger    *zap.Logger

	mu      sync.Mutex
	current *domain.Category
}

func NewSelectionUseCase(
	directory *DirectoryUseCase,
	markers *MarkerUseCase,
	logger *zap.Logger,
) *SelectionUseCase {
	return &SelectionUseCase{
		directory: directory,
		markers:   markers,
		logger:    logger,
	}
}

// Select moves the machine to Selected(category) or, for "none" or an empty
// token, to NoneSelected. Unknown tokens are rejected and leave the prior
// selection untouched. Re-selecting the current category is a no-op beyond
// re-confirming the same subset.
func (uc *SelectionUseCase) Select(token string) (domain.MarkerDelta, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var next *domain.Category
	if token != "" && token != "none" {
		category, ok := domain.ParseCategory(token)
		if !ok {
			uc.logger.Warn("Rejected unknown category token", zap.String("token", token))
			return domain.MarkerDelta{}, errors.ErrUnknownCategory
		}
		next = &category
	}

	uc.current = next
	return uc.markers.Sync(uc.activeLocked()), nil
}

// Resync re-derives the active subset without changing the selection, for
// use after the directory itself changed underneath the selection.
func (uc *SelectionUseCase) Resync() domain.MarkerDelta {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.markers.Sync(uc.activeLocked())
}

// Current returns the selected category, or false when nothing is selected.
func (uc *SelectionUseCase) Current() (domain.Category, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return "", false
	}
	return *uc.current, true
}

// Active returns the place subset of the current selection.
func (uc *SelectionUseCase) Active() []domain.Place {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.activeLocked()
}

func (uc *SelectionUseCase) activeLocked() []domain.Place {
	if uc.current == nil {
		return nil
	}
	return uc.directory.ListFor(*uc.current)
}
