package board

import (
	"slices"
	"testing"
)

func TestReconcile_DropsAlertsWithUnknownRoutes(t *testing.T) {
	routes := []Route{route("1", "A1", nil)}
	alerts := []Alert{alertFor("9", "1", "2")}

	got, stats := Reconcile(routes, alerts)
	if len(got) != 0 {
		t.Fatalf("expected alert 9 to be dropped, got %d alerts", len(got))
	}
	if !slices.Equal(stats.UnknownRoute, []string{"9"}) {
		t.Errorf("UnknownRoute = %v, want [9]", stats.UnknownRoute)
	}
	if stats.Alerts != 1 || stats.Kept != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestReconcile_AgencyWideAlertIsGeneral(t *testing.T) {
	alerts := []Alert{{
		ID:               "agency",
		InformedEntities: []InformedEntity{{AgencyID: "PVTA"}},
	}}

	got, stats := Reconcile(nil, alerts)
	if len(got) != 1 {
		t.Fatalf("agency-wide alert should survive, got %d", len(got))
	}
	if !got[0].General() {
		t.Errorf("agency-wide alert should resolve to no routes, got %v", got[0].Routes)
	}
	if len(stats.UnknownRoute) != 0 {
		t.Errorf("agency-wide marker counted as unknown route: %v", stats.UnknownRoute)
	}
}

func TestReconcile_AgencyWideWithUnknownRouteIsDropped(t *testing.T) {
	alerts := []Alert{{
		ID: "mixed",
		InformedEntities: []InformedEntity{
			{AgencyID: "PVTA"},
			{RouteID: "gone"},
		},
	}}

	got, _ := Reconcile([]Route{route("1", "A1", nil)}, alerts)
	if len(got) != 0 {
		t.Errorf("alert referencing a withdrawn route should be dropped, got %v", got)
	}
}

func TestReconcile_DeduplicatesRoutes(t *testing.T) {
	routes := []Route{route("1", "A1", nil), route("2", "B2", nil)}
	alerts := []Alert{alertFor("3", "2", "1", "2", "1")}

	got, stats := Reconcile(routes, alerts)
	if len(got) != 1 {
		t.Fatalf("got %d alerts, want 1", len(got))
	}
	var gotIDs []string
	for _, r := range got[0].Routes {
		gotIDs = append(gotIDs, r.ID)
	}
	if !slices.Equal(gotIDs, []string{"2", "1"}) {
		t.Errorf("routes = %v, want [2 1] in first-appearance order", gotIDs)
	}
	if !slices.Equal(stats.DuplicateRouteRef, []string{"3"}) {
		t.Errorf("DuplicateRouteRef = %v, want [3]", stats.DuplicateRouteRef)
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	routes := []Route{route("1", "A1", intPtr(2))}
	alerts := []Alert{alertFor("3", "1", "1")}
	before := len(alerts[0].InformedEntities)

	_, _ = Reconcile(routes, alerts)

	if len(alerts[0].InformedEntities) != before {
		t.Error("Reconcile changed the input alert")
	}
	if routes[0].ID != "1" || *routes[0].SortOrder != 2 {
		t.Error("Reconcile changed the input routes")
	}
}

func TestReconcile_TripAndStopSelectors(t *testing.T) {
	routes := []Route{route("1", "A1", nil)}
	tests := []struct {
		name         string
		entities     []InformedEntity
		wantRoutes   []string
		unresolvable bool
	}{
		{"trip on known route", []InformedEntity{{RouteID: "1", TripID: "t1"}}, []string{"1"}, false},
		{"stop on known route", []InformedEntity{{RouteID: "1", StopID: "s1"}}, []string{"1"}, false},
		{"stop only", []InformedEntity{{StopID: "s1"}}, nil, true},
		{"trip without route", []InformedEntity{{TripID: "t1"}}, nil, true},
		{"agency stop", []InformedEntity{{AgencyID: "PVTA", StopID: "s1"}}, nil, true},
		{"stop next to known route", []InformedEntity{{RouteID: "1"}, {StopID: "s1"}}, nil, true},
		{"empty selector", []InformedEntity{{}}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Reconcile(routes, []Alert{{ID: "a", InformedEntities: tt.entities}})
			if tt.unresolvable {
				if len(got) != 0 {
					t.Fatalf("alert should be dropped, got %v", got)
				}
				if !slices.Equal(stats.Unresolvable, []string{"a"}) {
					t.Errorf("Unresolvable = %v, want [a]", stats.Unresolvable)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("got %d alerts, want 1", len(got))
			}
			var gotIDs []string
			for _, r := range got[0].Routes {
				gotIDs = append(gotIDs, r.ID)
			}
			if !slices.Equal(gotIDs, tt.wantRoutes) {
				t.Errorf("routes = %v, want %v", gotIDs, tt.wantRoutes)
			}
		})
	}
}

func TestInformedEntity_AgencyWide(t *testing.T) {
	tests := []struct {
		e    InformedEntity
		want bool
	}{
		{InformedEntity{AgencyID: "PVTA"}, true},
		{InformedEntity{AgencyID: "PVTA", RouteID: "1"}, false},
		{InformedEntity{AgencyID: "PVTA", TripID: "t1"}, false},
		{InformedEntity{AgencyID: "PVTA", StopID: "s1"}, false},
		{InformedEntity{}, false},
	}
	for _, tt := range tests {
		if got := tt.e.AgencyWide(); got != tt.want {
			t.Errorf("%+v.AgencyWide() = %v, want %v", tt.e, got, tt.want)
		}
	}
}
