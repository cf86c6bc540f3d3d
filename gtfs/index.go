package gtfs

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// Schedule holds the parsed agency and route tables.
type Schedule struct {
	agencies []Agency
	routes   []Route // file order
}

func newSchedule(agencies []Agency, routes []Route) *Schedule {
	return &Schedule{agencies: agencies, routes: routes}
}

// Agency looks up an agency by agency_id. An empty id selects the first
// agency in agency.txt.
func (s *Schedule) Agency(agencyID string) (Agency, bool) {
	for _, a := range s.agencies {
		if agencyID == "" || a.ID == agencyID {
			return a, true
		}
	}
	return Agency{}, false
}

// BoardRoutes maps routes.txt rows to board routes in file order. A non-empty
// agencyID keeps that agency's routes; rows without an agency_id belong to the
// feed's only agency and are always kept.
func (s *Schedule) BoardRoutes(agencyID string) []board.Route {
	out := make([]board.Route, 0, len(s.routes))
	for _, r := range s.routes {
		if agencyID != "" && r.AgencyID != "" && r.AgencyID != agencyID {
			continue
		}
		out = append(out, board.Route{
			ID:           r.ID,
			Abbreviation: r.ShortName,
			Color:        optional(r.Color),
			TextColor:    optional(r.TextColor),
			SortOrder:    optionalInt(r.SortOrder),
		})
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(s string) *int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &i
}
