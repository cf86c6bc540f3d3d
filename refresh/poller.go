// Package refresh runs periodic fetch loops and publishes their latest outcome
// as a board.Result.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// FetchFunc fetches one fresh snapshot.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Poller repeatedly calls a FetchFunc and keeps only the latest outcome.
// A Poller without a FetchFunc stands for a source that is not configured and
// stays Pending forever.
type Poller[T any] struct {
	name     string
	fetch    FetchFunc[T]
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger

	mu        sync.RWMutex
	latest    board.Result[T]
	version   uint64
	updatedAt time.Time
}

// DefaultInterval is used when a poller is created without an interval.
const DefaultInterval = 30 * time.Second

// New creates a poller. A non-positive timeout defaults to the interval.
func New[T any](name string, fetch FetchFunc[T], interval, timeout time.Duration, logger zerolog.Logger) *Poller[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = interval
	}
	return &Poller[T]{
		name:     name,
		fetch:    fetch,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With().Str("poller", name).Logger(),
		latest:   board.Pending[T](),
	}
}

// Name identifies the poller in logs and health output.
func (p *Poller[T]) Name() string { return p.name }

// Configured reports whether the poller has a source to fetch from.
func (p *Poller[T]) Configured() bool { return p.fetch != nil }

// Run fetches immediately and then once per interval until ctx is done.
func (p *Poller[T]) Run(ctx context.Context) {
	if p.fetch == nil {
		p.logger.Debug().Msg("source not configured, staying pending")
		<-ctx.Done()
		return
	}

	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller[T]) tick(ctx context.Context) {
	fctx, cancel := context.WithTimeout(ctx, p.timeout)
	start := time.Now()
	v, err := p.fetch(fctx)
	cancel()

	// The loop was torn down while the request was in flight.
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		p.logger.Warn().Err(err).Dur("took", time.Since(start)).Msg("fetch failed")
		p.publish(board.Failed[T](err))
		return
	}
	p.logger.Debug().Dur("took", time.Since(start)).Msg("fetch succeeded")
	p.publish(board.Ready(v))
}

func (p *Poller[T]) publish(r board.Result[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.latest = r
	p.version++
	p.updatedAt = time.Now()
}

// Latest returns the most recent outcome and its version. Version 0 means
// nothing was published yet.
func (p *Poller[T]) Latest() (board.Result[T], uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.version
}

// UpdatedAt is the time of the last publish, zero if none.
func (p *Poller[T]) UpdatedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updatedAt
}
