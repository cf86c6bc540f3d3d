package board

// Normalize maps resolved alerts to canonical messages, keeping their order.
// It never invents a placeholder route for general alerts.
func Normalize(alerts []ResolvedAlert) []Message {
	out := make([]Message, 0, len(alerts))
	for _, a := range alerts {
		routes := make([]MessageRoute, 0, len(a.Routes))
		for _, r := range a.Routes {
			routes = append(routes, MessageRoute{
				ID:           r.ID,
				Abbreviation: r.Abbreviation,
				Color:        r.Color,
				TextColor:    r.TextColor,
			})
		}
		out = append(out, Message{
			ID:          a.Alert.ID,
			Header:      a.Alert.Header.First(),
			Description: a.Alert.Description.First(),
			Priority:    a.Alert.Priority,
			Routes:      routes,
		})
	}
	return out
}
