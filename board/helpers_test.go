package board

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func route(id, abbr string, sortOrder *int) Route {
	return Route{ID: id, Abbreviation: abbr, SortOrder: sortOrder}
}

func alertFor(id string, routeIDs ...string) Alert {
	a := Alert{ID: id, Header: Text("H" + id), Description: Text("D" + id)}
	for _, rid := range routeIDs {
		a.InformedEntities = append(a.InformedEntities, InformedEntity{RouteID: rid})
	}
	return a
}

func ids(msgs []Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ID)
	}
	return out
}

func routeIDs(m Message) []string {
	out := make([]string, 0, len(m.Routes))
	for _, r := range m.Routes {
		out = append(out, r.ID)
	}
	return out
}
