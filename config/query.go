package config

import (
	"net/url"
	"strings"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// Query parameters understood by board requests.
const (
	ParamSchedule  = "gtfsScheduleUrl"
	ParamAlerts    = "gtfsRealtimeAlertsUrl"
	ParamInfoPoint = "infoPoint"
	ParamRoutes    = "routes"
)

// SourceParams are the parameters that select upstream sources.
var SourceParams = []string{ParamSchedule, ParamAlerts, ParamInfoPoint}

// Sources names the upstreams a board reads from. A nil URL is not configured.
type Sources struct {
	Schedule  *url.URL
	Alerts    *url.URL
	InfoPoint *url.URL
}

// Key identifies the source set; boards are shared between equal keys.
func (s Sources) Key() string {
	str := func(u *url.URL) string {
		if u == nil {
			return "-"
		}
		return u.String()
	}
	return "schedule=" + str(s.Schedule) + "|alerts=" + str(s.Alerts) + "|infopoint=" + str(s.InfoPoint)
}

// BoardQuery is a parsed board request.
type BoardQuery struct {
	Sources Sources
	Routes  *board.RouteFilter
}

// DefaultBoardQuery derives request defaults from the loaded configuration.
func DefaultBoardQuery(cfg AppConfig) BoardQuery {
	q := BoardQuery{
		Sources: Sources{
			Schedule:  ParseAbsoluteURL(cfg.GTFS.StaticURL),
			Alerts:    ParseAbsoluteURL(cfg.GTFSRT.ServiceAlertsURL),
			InfoPoint: parseInfoPointURL(cfg.InfoPoint.URL),
		},
	}
	if strings.TrimSpace(cfg.Board.Routes) != "" {
		q.Routes = board.ParseRouteFilter(cfg.Board.Routes, true)
	}
	return q
}

// ParseBoardQuery reads a board request. Parameters missing from values keep
// their default; a present but unparseable URL leaves that source not
// configured.
func ParseBoardQuery(values url.Values, defaults BoardQuery) BoardQuery {
	q := defaults
	if values.Has(ParamSchedule) {
		q.Sources.Schedule = ParseAbsoluteURL(values.Get(ParamSchedule))
	}
	if values.Has(ParamAlerts) {
		q.Sources.Alerts = ParseAbsoluteURL(values.Get(ParamAlerts))
	}
	if values.Has(ParamInfoPoint) {
		q.Sources.InfoPoint = parseInfoPointURL(values.Get(ParamInfoPoint))
	}
	if values.Has(ParamRoutes) {
		q.Routes = board.ParseRouteFilter(values.Get(ParamRoutes), true)
	}
	return q
}

// ParseAbsoluteURL returns nil unless raw is an absolute http(s) URL.
func ParseAbsoluteURL(raw string) *url.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	return u
}

func parseInfoPointURL(raw string) *url.URL {
	u := ParseAbsoluteURL(raw)
	if u != nil && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u
}
