package board

// Stats summarizes one pipeline run.
type Stats struct {
	Reconcile ReconcileStats
	Filtered  int // alerts removed by the whitelist
	Messages  int
}

// Run executes Reconcile, Filter, Sort and Normalize over one snapshot pair.
func Run(routes []Route, alerts []Alert, filter *RouteFilter) ([]Message, Stats) {
	resolved, rs := Reconcile(routes, alerts)
	filtered := Filter(resolved, filter)
	msgs := Normalize(Sort(filtered))
	return msgs, Stats{
		Reconcile: rs,
		Filtered:  len(resolved) - len(filtered),
		Messages:  len(msgs),
	}
}

// Messages is Run without the statistics.
func Messages(routes []Route, alerts []Alert, filter *RouteFilter) []Message {
	msgs, _ := Run(routes, alerts, filter)
	return msgs
}

// Build applies the pipeline to two asynchronously produced inputs.
func Build(routes Result[[]Route], alerts Result[[]Alert], filter *RouteFilter) Result[[]Message] {
	res, _ := BuildWithStats(routes, alerts, filter)
	return res
}

// BuildWithStats is Build that also reports statistics when the pipeline ran.
func BuildWithStats(routes Result[[]Route], alerts Result[[]Alert], filter *RouteFilter) (Result[[]Message], *Stats) {
	var stats *Stats
	res := Combine(routes, alerts, func(r []Route, a []Alert) []Message {
		msgs, s := Run(r, a, filter)
		stats = &s
		return msgs
	})
	return res, stats
}
