package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPoller_PendingUntilFirstFetch(t *testing.T) {
	p := New[int]("routes", func(ctx context.Context) (int, error) { return 1, nil }, time.Hour, 0, zerolog.Nop())
	r, v := p.Latest()
	if r.State() != board.StatePending || v != 0 {
		t.Errorf("initial = %v/%d, want pending/0", r.State(), v)
	}
}

func TestPoller_PublishesReady(t *testing.T) {
	p := New[int]("routes", func(ctx context.Context) (int, error) { return 42, nil }, time.Hour, 0, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	waitFor(t, func() bool { _, v := p.Latest(); return v == 1 })
	r, _ := p.Latest()
	if got, ok := r.Value(); !ok || got != 42 {
		t.Errorf("latest = %v (%v), want 42", got, r.State())
	}
	if p.UpdatedAt().IsZero() {
		t.Error("UpdatedAt should be set after publish")
	}
}

func TestPoller_FailureReplacesPreviousValue(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 7, nil
		}
		return 0, errors.New("upstream down")
	}
	p := New[int]("alerts", fetch, 10*time.Millisecond, 0, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	waitFor(t, func() bool { r, _ := p.Latest(); return r.State() == board.StateFailed })
	r, _ := p.Latest()
	if r.Err() == nil {
		t.Error("failed result should carry the fetch error")
	}
}

func TestPoller_UnconfiguredStaysPending(t *testing.T) {
	p := New[int]("routes", nil, time.Millisecond, 0, zerolog.Nop())
	if p.Configured() {
		t.Fatal("poller without fetch should not be configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	r, v := p.Latest()
	if r.State() != board.StatePending || v != 0 {
		t.Errorf("unconfigured poller = %v/%d, want pending/0", r.State(), v)
	}
}

func TestPoller_DiscardsResultAfterTeardown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetch := func(fctx context.Context) (int, error) {
		cancel()
		return 99, nil
	}
	p := New[int]("alerts", fetch, time.Hour, time.Hour, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	r, v := p.Latest()
	if r.State() != board.StatePending || v != 0 {
		t.Errorf("result published after teardown: %v/%d", r.State(), v)
	}
}

func TestPoller_TimeoutBoundsFetch(t *testing.T) {
	fetch := func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	p := New[int]("slow", fetch, time.Hour, 20*time.Millisecond, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	waitFor(t, func() bool { r, _ := p.Latest(); return r.State() == board.StateFailed })
	r, _ := p.Latest()
	if !errors.Is(r.Err(), context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", r.Err())
	}
}
