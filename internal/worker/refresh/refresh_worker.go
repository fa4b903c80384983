package refresh

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/worker"
	"go.uber.org/zap"
)

// Worker periodically advances the evaluation instant: on every tick the
// directory is rebuilt against the current reference-timezone time and the
// active selection is resynced so marker colors follow open/closed flips.
type Worker struct {
	*worker.BaseWorker

	directory *usecase.DirectoryUseCase
	selection *usecase.SelectionUseCase
	location  *time.Location
	interval  time.Duration
	logger    *zap.Logger
}

func NewWorker(
	directory *usecase.DirectoryUseCase,
	selection *usecase.SelectionUseCase,
	location *time.Location,
	interval time.Duration,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		BaseWorker: worker.NewBaseWorker("directory-refresh", logger),
		directory:  directory,
		selection:  selection,
		location:   location,
		interval:   interval,
		logger:     logger,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Refresh worker started",
		zap.Duration("interval", w.interval),
		zap.String("timezone", w.location.String()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return nil
		case now := <-ticker.C:
			w.refresh(ctx, now)
		}
	}
}

func (w *Worker) refresh(ctx context.Context, now time.Time) {
	at := domain.InstantAt(now, w.location)
	if err := w.directory.Refresh(ctx, at); err != nil {
		// The previous directory stays published; try again next tick.
		w.logger.Warn("Periodic refresh failed", zap.Error(err))
		return
	}

	delta := w.selection.Resync()
	if len(delta.Added) > 0 || len(delta.Removed) > 0 {
		w.logger.Info("Markers updated after refresh",
			zap.Int("added", len(delta.Added)),
			zap.Int("removed", len(delta.Removed)))
	}
}
