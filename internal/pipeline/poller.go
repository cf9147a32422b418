package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/oguzakin/eligibility-tracker/internal/repository"
)

// Poller claims pending applications in batches and hands them to the
// processor. One application failing never stops the batch.
type Poller struct {
	apps     repository.ApplicationRepository
	proc     *Processor
	interval time.Duration
	limit    int
	log      *slog.Logger
}

func NewPoller(apps repository.ApplicationRepository, proc *Processor, interval time.Duration, limit int, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if limit <= 0 {
		limit = 10
	}
	return &Poller{apps: apps, proc: proc, interval: interval, limit: limit, log: logger}
}

// Run polls until ctx is canceled. The first sweep happens immediately.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info("pipeline.poller.start", "interval", p.interval, "batch_limit", p.limit)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			p.log.Info("pipeline.poller.stop")
			return nil
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *Poller) sweep(ctx context.Context) {
	apps, err := p.apps.NextPending(ctx, p.limit)
	if err != nil {
		p.log.Error("pipeline.poller.query_failed", "error", err)
		return
	}
	if len(apps) == 0 {
		return
	}
	p.log.Info("pipeline.poller.batch", "applications", len(apps))
	for _, app := range apps {
		if ctx.Err() != nil {
			return
		}
		// Errors are already recorded on the application row.
		_ = p.proc.ProcessApplication(ctx, app)
	}
}
