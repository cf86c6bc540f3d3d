package board

import (
	"errors"
	"slices"
	"testing"

	"github.com/kr/pretty"
)

func TestRun_UnknownRouteDrop(t *testing.T) {
	routes := []Route{route("1", "A1", nil)}
	alerts := []Alert{alertFor("9", "1", "2")}

	got := Messages(routes, alerts, nil)
	if len(got) != 0 {
		t.Errorf("expected no messages, got %# v", pretty.Formatter(got))
	}
}

func TestRun_GeneralAlertSurvivesFilter(t *testing.T) {
	alerts := []Alert{{ID: "5", Header: Text("H"), Description: Text("D")}}

	got := Messages(nil, alerts, NewRouteFilter("A1"))
	want := []Message{{ID: "5", Header: "H", Description: "D", Routes: []MessageRoute{}}}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("general message mismatch:\n%s", diff)
	}
}

func TestRun_PartialRoutePruning(t *testing.T) {
	routes := []Route{route("1", "A1", nil), route("2", "B2", nil)}
	alerts := []Alert{alertFor("3", "1", "2")}

	got := Messages(routes, alerts, NewRouteFilter("A1"))
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	want := []MessageRoute{{ID: "1", Abbreviation: "A1"}}
	if diff := pretty.Diff(want, got[0].Routes); len(diff) > 0 {
		t.Errorf("routes mismatch:\n%s", diff)
	}
}

func TestRun_RouteDeduplication(t *testing.T) {
	routes := []Route{route("1", "A1", nil)}
	alerts := []Alert{alertFor("3", "1", "1")}

	got := Messages(routes, alerts, nil)
	if len(got) != 1 || !slices.Equal(routeIDs(got[0]), []string{"1"}) {
		t.Errorf("expected a single route entry, got %# v", pretty.Formatter(got))
	}
}

func TestRun_NullFilterKeepsEverything(t *testing.T) {
	routes := []Route{route("1", "A1", intPtr(1)), route("2", "B2", intPtr(2))}
	alerts := []Alert{alertFor("a", "1", "2"), alertFor("b", "2"), alertFor("c")}

	got := Messages(routes, alerts, nil)
	if len(got) != 3 {
		t.Fatalf("got %d messages, want 3", len(got))
	}
	for _, m := range got {
		if m.ID == "a" && len(m.Routes) != 2 {
			t.Errorf("message a lost routes: %v", routeIDs(m))
		}
	}
}

func TestRun_EmptyFilterKeepsOnlyGeneral(t *testing.T) {
	routes := []Route{route("1", "A1", nil)}
	alerts := []Alert{alertFor("a", "1"), alertFor("g")}

	msgs, stats := Run(routes, alerts, NewRouteFilter())
	if !slices.Equal(ids(msgs), []string{"g"}) {
		t.Errorf("messages = %v, want [g]", ids(msgs))
	}
	if stats.Filtered != 1 || stats.Messages != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRun_Idempotent(t *testing.T) {
	routes := []Route{
		{ID: "1", Abbreviation: "A1", Color: strPtr("FF0000"), SortOrder: intPtr(4)},
		{ID: "2", Abbreviation: "B2", TextColor: strPtr("FFFFFF"), SortOrder: intPtr(1)},
	}
	alerts := []Alert{alertFor("a", "1", "2"), alertFor("b", "2"), alertFor("c")}
	alerts[2].Priority = intPtr(0)
	filter := NewRouteFilter("A1", "B2")

	first := Messages(routes, alerts, filter)
	second := Messages(routes, alerts, filter)
	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("pipeline is not idempotent:\n%s", diff)
	}
	if !slices.Equal(ids(first), []string{"c", "a", "b"}) {
		t.Errorf("order = %v", ids(first))
	}
	if !slices.Equal(routeIDs(first[1]), []string{"2", "1"}) {
		t.Errorf("routes of a = %v, want [2 1]", routeIDs(first[1]))
	}
}

func TestBuild_SentinelPropagation(t *testing.T) {
	routes := []Route{route("1", "A1", nil)}
	alerts := []Alert{alertFor("a", "1")}
	boom := errors.New("boom")

	tests := []struct {
		name   string
		routes Result[[]Route]
		alerts Result[[]Alert]
		want   State
	}{
		{"routes pending", Pending[[]Route](), Ready(alerts), StatePending},
		{"alerts pending", Ready(routes), Pending[[]Alert](), StatePending},
		{"pending and failed", Pending[[]Route](), Failed[[]Alert](boom), StatePending},
		{"routes failed", Failed[[]Route](boom), Ready(alerts), StateFailed},
		{"alerts failed", Ready(routes), Failed[[]Alert](boom), StateFailed},
		{"both ready", Ready(routes), Ready(alerts), StateReady},
		{"ready and empty", Ready([]Route{}), Ready([]Alert{}), StateReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := BuildWithStats(tt.routes, tt.alerts, nil)
			if got.State() != tt.want {
				t.Fatalf("state = %v, want %v", got.State(), tt.want)
			}
			if (stats != nil) != (tt.want == StateReady) {
				t.Errorf("stats presence = %v for state %v", stats != nil, tt.want)
			}
		})
	}
}

func TestBuild_ReadyEmptyIsNotNil(t *testing.T) {
	got := Build(Ready([]Route{}), Ready([]Alert{}), nil)
	msgs, ok := got.Value()
	if !ok {
		t.Fatal("expected ready")
	}
	if msgs == nil || len(msgs) != 0 {
		t.Errorf("expected empty non-nil message list, got %#v", msgs)
	}
}

func TestNormalize_FirstTranslation(t *testing.T) {
	in := []ResolvedAlert{{
		Alert: Alert{
			ID:          "x",
			Header:      TranslatedString{{Text: "Detour", Language: "en"}, {Text: "Desvío", Language: "es"}},
			Description: nil,
		},
	}}

	got := Normalize(in)
	if got[0].Header != "Detour" {
		t.Errorf("header = %q, want first translation", got[0].Header)
	}
	if got[0].Description != "" {
		t.Errorf("description = %q, want empty", got[0].Description)
	}
	if got[0].Routes == nil {
		t.Error("routes must be an empty slice, not nil")
	}
}
