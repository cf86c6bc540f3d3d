package detours

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/config"
	"github.com/theoremus-urban-solutions/detour-board/gtfs"
	"github.com/theoremus-urban-solutions/detour-board/gtfsrt"
	"github.com/theoremus-urban-solutions/detour-board/infopoint"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

// Intervals controls how often each board input is refreshed.
type Intervals struct {
	Routes        time.Duration
	RoutesTimeout time.Duration
	Alerts        time.Duration
	AlertsTimeout time.Duration
}

// Inputs are the two sources of a board and their refresh timing. A nil
// source is not configured.
type Inputs struct {
	Routes    board.RouteSource
	Alerts    board.AlertSource
	Intervals Intervals
}

// SelectInputs applies the source selection rule: routes come from the GTFS
// schedule when one is given, else from InfoPoint; alerts come from GTFS-RT
// when given, else from InfoPoint.
func SelectInputs(cfg config.AppConfig, src config.Sources, client *upstream.Client, logger zerolog.Logger) Inputs {
	var in Inputs

	var ip *infopoint.Source
	if src.InfoPoint != nil {
		c, err := infopoint.NewClient(client, src.InfoPoint.String())
		if err != nil {
			logger.Warn().Err(err).Msg("InfoPoint source not usable")
		} else {
			ip = infopoint.NewSource(c)
		}
	}

	switch {
	case src.Schedule != nil:
		in.Routes = gtfs.NewScheduleSource(client, src.Schedule.String(), cfg.GTFS.AgencyID)
		in.Intervals.Routes = cfg.GTFS.RefreshInterval()
		in.Intervals.RoutesTimeout = cfg.GTFS.Timeout()
	case ip != nil:
		in.Routes = ip
		in.Intervals.Routes = cfg.InfoPoint.RoutesInterval()
		in.Intervals.RoutesTimeout = cfg.InfoPoint.Timeout()
	}

	switch {
	case src.Alerts != nil:
		in.Alerts = gtfsrt.NewAlertFeed(client, src.Alerts.String())
		in.Intervals.Alerts = cfg.GTFSRT.ReadInterval()
		in.Intervals.AlertsTimeout = cfg.GTFSRT.Timeout()
	case ip != nil:
		in.Alerts = ip
		in.Intervals.Alerts = cfg.InfoPoint.MessagesInterval()
		in.Intervals.AlertsTimeout = cfg.InfoPoint.Timeout()
	}

	return in
}
