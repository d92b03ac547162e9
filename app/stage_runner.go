package app

import (
	"context"

	"smokestat/internal"
	"smokestat/internal/errors"

	"github.com/jonboulle/clockwork"
)

// StageRunner executes the pipeline stages in order, checking for
// cancellation before each one.
type StageRunner struct {
	logger *internal.Logger
	clock  clockwork.Clock
}

// NewStageRunner creates a new stage runner
func NewStageRunner(logger *internal.Logger, clock clockwork.Clock) *StageRunner {
	return &StageRunner{
		logger: logger,
		clock:  clock,
	}
}

// Run executes fn as the named stage. A cancelled context stops the
// pipeline before fn is called.
func (r *StageRunner) Run(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "stage %s cancelled", name)
	}

	start := r.clock.Now()
	r.logger.Debug("stage started", "stage", name)
	if err := fn(); err != nil {
		r.logger.Debug("stage failed", "stage", name, "error", err)
		return err
	}
	r.logger.Info("stage completed", "stage", name, "duration", r.clock.Since(start))
	return nil
}
