package detours

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/theoremus-urban-solutions/detour-board/config"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

var (
	ErrTooManyBoards  = errors.New("too many boards")
	ErrRegistryClosed = errors.New("board registry is shut down")
)

// InputSelector turns a source set into board inputs.
type InputSelector func(src config.Sources) Inputs

// Registry lazily creates one running Board per distinct source set.
type Registry struct {
	ctx          context.Context
	max          int
	selectInputs InputSelector
	logger       zerolog.Logger

	mu     sync.Mutex
	boards map[string]*Board
	wg     conc.WaitGroup
}

// NewRegistry creates a registry whose boards run until ctx is done. A
// non-positive maxBoards means no limit.
func NewRegistry(ctx context.Context, maxBoards int, selectInputs InputSelector, logger zerolog.Logger) *Registry {
	return &Registry{
		ctx:          ctx,
		max:          maxBoards,
		selectInputs: selectInputs,
		logger:       logger,
		boards:       map[string]*Board{},
	}
}

// NewConfiguredRegistry wires SelectInputs to the given configuration.
func NewConfiguredRegistry(ctx context.Context, cfg config.AppConfig, client *upstream.Client, logger zerolog.Logger) *Registry {
	return NewRegistry(ctx, cfg.Board.MaxBoards, func(src config.Sources) Inputs {
		return SelectInputs(cfg, src, client, logger)
	}, logger)
}

// Get returns the board for src, starting it on first use.
func (r *Registry) Get(src config.Sources) (*Board, error) {
	key := src.Key()

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.boards[key]; ok {
		return b, nil
	}
	if r.ctx.Err() != nil {
		return nil, ErrRegistryClosed
	}
	if r.max > 0 && len(r.boards) >= r.max {
		return nil, ErrTooManyBoards
	}

	in := r.selectInputs(src)
	b := NewBoard(key, in.Routes, in.Alerts, in.Intervals, r.logger)
	r.boards[key] = b
	r.wg.Go(func() { b.Run(r.ctx) })
	r.logger.Info().Str("board", key).Int("boards", len(r.boards)).Msg("Created board")
	return b, nil
}

// Boards returns all boards ordered by name.
func (r *Registry) Boards() []*Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Board, 0, len(r.boards))
	for _, b := range r.boards {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *Board) int { return strings.Compare(a.name, b.name) })
	return out
}

// Wait blocks until every board has stopped. Cancel the registry context first.
func (r *Registry) Wait() {
	r.wg.Wait()
}
