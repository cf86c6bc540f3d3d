package board

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Sort orders alerts by priority (missing sorts last), then by the lowest sort
// order among their routes (general alerts and routes without a sort order
// count as +Inf). Ties keep their input order. Each alert's routes are
// independently ordered by sort order, then abbreviation.
func Sort(alerts []ResolvedAlert) []ResolvedAlert {
	out := make([]ResolvedAlert, len(alerts))
	for i, a := range alerts {
		routes := slices.Clone(a.Routes)
		slices.SortStableFunc(routes, compareRoutes)
		out[i] = ResolvedAlert{Alert: a.Alert, Routes: routes}
	}
	slices.SortStableFunc(out, compareAlerts)
	return out
}

func compareAlerts(a, b ResolvedAlert) int {
	if c := cmp.Compare(priorityKey(a.Alert.Priority), priorityKey(b.Alert.Priority)); c != 0 {
		return c
	}
	return cmp.Compare(minSortOrder(a.Routes), minSortOrder(b.Routes))
}

func compareRoutes(a, b Route) int {
	if c := cmp.Compare(sortOrderKey(a.SortOrder), sortOrderKey(b.SortOrder)); c != 0 {
		return c
	}
	return strings.Compare(a.Abbreviation, b.Abbreviation)
}

func priorityKey(p *int) float64 {
	if p == nil {
		return math.Inf(1)
	}
	return float64(*p)
}

func sortOrderKey(o *int) float64 {
	if o == nil {
		return math.Inf(1)
	}
	return float64(*o)
}

func minSortOrder(routes []Route) float64 {
	m := math.Inf(1)
	for _, r := range routes {
		m = math.Min(m, sortOrderKey(r.SortOrder))
	}
	return m
}
