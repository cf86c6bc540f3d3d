// Package detours keeps detour message boards up to date.
//
// A Board polls one route source and one alert source and serves the
// reconciled, filtered and sorted messages for any route whitelist. Output is
// memoized per input snapshot pair and whitelist.
package detours

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/refresh"
)

// Board is one message board fed by a pair of sources.
type Board struct {
	name   string
	routes *refresh.Poller[[]board.Route]
	alerts *refresh.Poller[[]board.Alert]
	cache  *messageCache
	logger zerolog.Logger
}

// NewBoard creates a board. A nil source is not configured and keeps the board
// pending.
func NewBoard(name string, routes board.RouteSource, alerts board.AlertSource, iv Intervals, logger zerolog.Logger) *Board {
	logger = logger.With().Str("board", name).Logger()

	var fetchRoutes refresh.FetchFunc[[]board.Route]
	if routes != nil {
		fetchRoutes = routes.Routes
	}
	var fetchAlerts refresh.FetchFunc[[]board.Alert]
	if alerts != nil {
		fetchAlerts = alerts.Alerts
	}

	return &Board{
		name:   name,
		routes: refresh.New("routes", fetchRoutes, iv.Routes, iv.RoutesTimeout, logger),
		alerts: refresh.New("alerts", fetchAlerts, iv.Alerts, iv.AlertsTimeout, logger),
		cache:  newMessageCache(),
		logger: logger,
	}
}

func (b *Board) Name() string { return b.name }

// Run polls both inputs until ctx is done.
func (b *Board) Run(ctx context.Context) {
	b.logger.Info().Msg("Starting board")
	var wg conc.WaitGroup
	wg.Go(func() { b.routes.Run(ctx) })
	wg.Go(func() { b.alerts.Run(ctx) })
	wg.Wait()
	b.logger.Info().Msg("Board stopped")
}

// Messages returns the board content for filter given the latest inputs.
func (b *Board) Messages(filter *board.RouteFilter) board.Result[[]board.Message] {
	routes, rv := b.routes.Latest()
	alerts, av := b.alerts.Latest()

	key := snapshotKey{routes: rv, alerts: av}
	if res, ok := b.cache.get(key, filter.Key()); ok {
		return res
	}

	res, stats := board.BuildWithStats(routes, alerts, filter)
	if stats != nil {
		agg := NewWarningAggregator()
		agg.AddStats(*stats)
		agg.LogAll(b.logger.With().Str("filter", filter.Key()).Logger())
	}
	b.cache.put(key, filter.Key(), res)
	return res
}

// InputStatus describes one polled input.
type InputStatus struct {
	State      string    `json:"state"`
	Configured bool      `json:"configured"`
	Version    uint64    `json:"version"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
	Error      string    `json:"error,omitempty"`
}

// Status describes a board for health output.
type Status struct {
	Name   string      `json:"name"`
	Routes InputStatus `json:"routes"`
	Alerts InputStatus `json:"alerts"`
}

func (b *Board) Status() Status {
	return Status{
		Name:   b.name,
		Routes: inputStatus(b.routes),
		Alerts: inputStatus(b.alerts),
	}
}

func inputStatus[T any](p *refresh.Poller[T]) InputStatus {
	r, v := p.Latest()
	s := InputStatus{
		State:      r.State().String(),
		Configured: p.Configured(),
		Version:    v,
		UpdatedAt:  p.UpdatedAt(),
	}
	if err := r.Err(); err != nil {
		s.Error = err.Error()
	}
	return s
}
