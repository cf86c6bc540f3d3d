package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

type routesFunc func(ctx context.Context) ([]board.Route, error)

func (f routesFunc) Routes(ctx context.Context) ([]board.Route, error) { return f(ctx) }

type alertsFunc func(ctx context.Context) ([]board.Alert, error)

func (f alertsFunc) Alerts(ctx context.Context) ([]board.Alert, error) { return f(ctx) }

func TestFetchBoard(t *testing.T) {
	routes := routesFunc(func(ctx context.Context) ([]board.Route, error) {
		return []board.Route{{ID: "1", Abbreviation: "B43"}}, nil
	})
	alerts := alertsFunc(func(ctx context.Context) ([]board.Alert, error) {
		return []board.Alert{{ID: "a", Description: board.Text("Detour"), InformedEntities: []board.InformedEntity{{RouteID: "1"}}}}, nil
	})

	res := fetchBoard(context.Background(), routes, alerts, nil)
	msgs, ok := res.Value()
	if !ok || len(msgs) != 1 || msgs[0].Routes[0].Abbreviation != "B43" {
		t.Fatalf("result = %v %+v", res.State(), msgs)
	}

	broken := alertsFunc(func(ctx context.Context) ([]board.Alert, error) { return nil, errors.New("down") })
	if res := fetchBoard(context.Background(), routes, broken, nil); res.State() != board.StateFailed {
		t.Errorf("state = %v, want failed", res.State())
	}
}

func TestWriteBoard(t *testing.T) {
	res := board.Ready([]board.Message{})

	var js bytes.Buffer
	if err := writeBoard(&js, res, "json"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(js.String(), `"status":"ready"`) {
		t.Errorf("json = %s", js.String())
	}

	var html bytes.Buffer
	if err := writeBoard(&html, res, "html"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html.String(), "There are no detours currently in effect.") {
		t.Errorf("html = %s", html.String())
	}
}
