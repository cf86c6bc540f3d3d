package gtfs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

// ScheduleSource downloads a GTFS zip on every call and serves its routes.
type ScheduleSource struct {
	client   *upstream.Client
	location string
	agencyID string
}

var _ board.RouteSource = (*ScheduleSource)(nil)

// NewScheduleSource reads the schedule from an http(s) URL or a local path.
// A non-empty agencyID restricts the board to that agency's routes.
func NewScheduleSource(client *upstream.Client, location, agencyID string) *ScheduleSource {
	return &ScheduleSource{client: client, location: location, agencyID: agencyID}
}

func (s *ScheduleSource) Routes(ctx context.Context) ([]board.Route, error) {
	sched, err := s.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	agency, ok := sched.Agency(s.agencyID)
	if !ok && s.agencyID != "" {
		return nil, fmt.Errorf("agency %q not found in gtfs schedule", s.agencyID)
	}
	routes := sched.BoardRoutes(s.agencyID)
	log.Info().
		Str("agency", agency.Name).
		Int("routes", len(routes)).
		Msg("Loaded gtfs schedule")
	return routes, nil
}

// Schedule fetches and parses the whole schedule.
func (s *ScheduleSource) Schedule(ctx context.Context) (*Schedule, error) {
	body, err := s.client.Fetch(ctx, s.location)
	if err != nil {
		return nil, err
	}
	return ParseSchedule(body)
}
