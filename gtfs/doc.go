/*
Package gtfs loads the route table of a static GTFS schedule.

Only agency.txt and routes.txt are read; everything else in the archive is
ignored. Parsing accepts a UTF-8 byte order mark and rows with missing
trailing columns.

# Basic Usage

	sched, err := gtfs.ParseSchedule(zipBytes)
	if err != nil {
	    return err
	}
	routes := sched.BoardRoutes("") // or an agency_id

For periodic refresh wrap a ScheduleSource, which fetches the archive through
an upstream.Client, in a refresh.Poller.

# Route mapping

  - route_id → Route.ID
  - route_short_name → Route.Abbreviation
  - route_color, route_text_color → Route.Color, Route.TextColor (blank is absent)
  - route_sort_order → Route.SortOrder (blank or non-numeric is absent)

Rows whose agency_id differs from a requested agency are skipped. Rows without
an agency_id are always kept.
*/
package gtfs
