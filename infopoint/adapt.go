package infopoint

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// AdaptRoutes converts InfoPoint routes in response order.
func AdaptRoutes(routes []Route) []board.Route {
	out := make([]board.Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, board.Route{
			ID:           strconv.Itoa(r.RouteID),
			Abbreviation: r.RouteAbbreviation,
			Color:        optional(r.Color),
			TextColor:    optional(r.TextColor),
			SortOrder:    r.SortOrder,
		})
	}
	return out
}

// AdaptMessages converts public messages into alerts. The message body becomes
// the description; InfoPoint messages have no header.
func AdaptMessages(msgs []PublicMessage) []board.Alert {
	out := make([]board.Alert, 0, len(msgs))
	for _, m := range msgs {
		a := board.Alert{
			ID:          strconv.Itoa(m.MessageID),
			Priority:    m.Priority,
			Description: board.Text(m.Message),
		}
		for _, id := range m.Routes {
			a.InformedEntities = append(a.InformedEntities, board.InformedEntity{RouteID: strconv.Itoa(id)})
		}
		out = append(out, a)
	}
	return out
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
