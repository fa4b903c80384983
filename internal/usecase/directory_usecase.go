package usecase

import (
	"context"
	"sync"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// DirectoryUseCase holds the four normalized category lists. Refresh rebuilds
// all four from the record source and publishes them in one swap, so readers
// never observe a partially-updated directory. Counts are derived from the
// current lists on every call, never cached.
type DirectoryUseCase struct {
	records RecordSource
	logger  *zap.Logger

	mu    sync.RWMutex
	lists map[domain.Category][]domain.Place
	at    domain.Instant
}

func NewDirectoryUseCase(records RecordSource, logger *zap.Logger) *DirectoryUseCase {
	return &DirectoryUseCase{
		records: records,
		logger:  logger,
		lists:   make(map[domain.Category][]domain.Place),
	}
}

// Refresh re-derives every category list against the given evaluation
// instant. On a source error the previous directory stays published.
func (uc *DirectoryUseCase) Refresh(ctx context.Context, at domain.Instant) error {
	raw, err := uc.records.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("Directory refresh failed, keeping previous state", zap.Error(err))
		return err
	}

	lists := make(map[domain.Category][]domain.Place, len(domain.Categories()))
	for _, category := range domain.Categories() {
		lists[category] = NormalizePlaces(raw[category], category, at)
	}

	uc.mu.Lock()
	uc.lists = lists
	uc.at = at
	uc.mu.Unlock()

	uc.logger.Info("Directory refreshed",
		zap.Int("day", at.Day),
		zap.Int("hour", at.Hour),
		zap.Int("minute", at.Minute))

	return nil
}

// ListFor returns the current list of one category. Unknown categories yield
// an empty list. The returned slice is shared and must be treated read-only.
func (uc *DirectoryUseCase) ListFor(category domain.Category) []domain.Place {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.lists[category]
}

// OpenCount counts the currently-open places of a category.
func (uc *DirectoryUseCase) OpenCount(category domain.Category) int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	open := 0
	for _, p := range uc.lists[category] {
		if p.Open {
			open++
		}
	}
	return open
}

// TotalCount counts all places of a category.
func (uc *DirectoryUseCase) TotalCount(category domain.Category) int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.lists[category])
}

// Instant returns the evaluation instant of the published directory.
func (uc *DirectoryUseCase) Instant() domain.Instant {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.at
}

// Summaries builds the per-category badge pairs in canonical order.
func (uc *DirectoryUseCase) Summaries() []dto.CategorySummary {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	summaries := make([]dto.CategorySummary, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		open := 0
		for _, p := range uc.lists[category] {
			if p.Open {
				open++
			}
		}
		summaries = append(summaries, dto.CategorySummary{
			Category:   string(category),
			OpenCount:  open,
			TotalCount: len(uc.lists[category]),
		})
	}
	return summaries
}
