package board

// ReconcileStats describes what Reconcile did with a snapshot.
type ReconcileStats struct {
	Alerts            int
	Kept              int
	UnknownRoute      []string // ids of alerts dropped for referencing a missing route
	Unresolvable      []string // ids of alerts dropped for trip or stop selectors without a route
	DuplicateRouteRef []string // ids of alerts that listed a route more than once
}

type dropReason int

const (
	keep dropReason = iota
	dropUnknownRoute
	dropUnresolvable
)

// Reconcile joins alerts to the route snapshot. An alert that references any
// route id missing from the snapshot is dropped, as is one carrying a trip or
// stop selector with no route id. Agency-wide markers are not route
// references. Route references are de-duplicated in order of first appearance.
func Reconcile(routes []Route, alerts []Alert) ([]ResolvedAlert, ReconcileStats) {
	byID := make(map[string]Route, len(routes))
	for _, r := range routes {
		byID[r.ID] = r
	}

	stats := ReconcileStats{Alerts: len(alerts)}
	out := make([]ResolvedAlert, 0, len(alerts))
	for _, a := range alerts {
		resolved, drop, dup := resolveRoutes(a, byID)
		if dup {
			stats.DuplicateRouteRef = append(stats.DuplicateRouteRef, a.ID)
		}
		switch drop {
		case dropUnknownRoute:
			stats.UnknownRoute = append(stats.UnknownRoute, a.ID)
			continue
		case dropUnresolvable:
			stats.Unresolvable = append(stats.Unresolvable, a.ID)
			continue
		}
		out = append(out, ResolvedAlert{Alert: a, Routes: resolved})
	}
	stats.Kept = len(out)
	return out, stats
}

func resolveRoutes(a Alert, byID map[string]Route) (routes []Route, drop dropReason, duplicate bool) {
	seen := make(map[string]struct{}, len(a.InformedEntities))
	routes = make([]Route, 0, len(a.InformedEntities))
	for _, e := range a.InformedEntities {
		if e.AgencyWide() {
			continue
		}
		if e.Unresolvable() {
			return nil, dropUnresolvable, duplicate
		}
		if _, dup := seen[e.RouteID]; dup {
			duplicate = true
			continue
		}
		seen[e.RouteID] = struct{}{}
		r, known := byID[e.RouteID]
		if !known {
			return nil, dropUnknownRoute, duplicate
		}
		routes = append(routes, r)
	}
	return routes, keep, duplicate
}
