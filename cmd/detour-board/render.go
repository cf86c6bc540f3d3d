package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/config"
	"github.com/theoremus-urban-solutions/detour-board/formatter"
	"github.com/theoremus-urban-solutions/detour-board/gtfs"
	"github.com/theoremus-urban-solutions/detour-board/gtfsrt"
	"github.com/theoremus-urban-solutions/detour-board/infopoint"
	"github.com/theoremus-urban-solutions/detour-board/internal"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "fetch sources once and print the board",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "schedule", Usage: "GTFS schedule zip (URL or file)"},
			&cli.StringFlag{Name: "agency", Usage: "agency_id whose routes to show from the schedule"},
			&cli.StringFlag{Name: "alerts", Usage: "GTFS-RT service alerts feed (URL or file)"},
			&cli.StringFlag{Name: "infopoint", Value: config.DefaultInfoPointURL, Usage: "Avail InfoPoint REST base URL"},
			&cli.StringFlag{Name: "routes", Usage: "comma separated route abbreviations to show"},
			&cli.StringFlag{Name: "format", Value: "json", Usage: "json|html"},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "fetch timeout"},
		},
		Action: func(c *cli.Context) error {
			internal.InitLoggingTo(os.Stderr, c.String("log-level"), "console")

			format := c.String("format")
			if format != "json" && format != "html" {
				return fmt.Errorf("unknown format %q", format)
			}

			routes, alerts, err := renderSources(c)
			if err != nil {
				return err
			}
			filter := board.ParseRouteFilter(c.String("routes"), c.IsSet("routes"))

			ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
			defer cancel()
			res := fetchBoard(ctx, routes, alerts, filter)

			if err := writeBoard(os.Stdout, res, format); err != nil {
				return err
			}
			if res.State() == board.StateFailed {
				return cli.Exit(res.Err(), 1)
			}
			return nil
		},
	}
}

// renderSources applies the same selection rule as the server, but also
// accepts local files for the GTFS inputs.
func renderSources(c *cli.Context) (board.RouteSource, board.AlertSource, error) {
	client := upstream.NewClient(nil)

	var ip *infopoint.Source
	if base := c.String("infopoint"); base != "" {
		ipc, err := infopoint.NewClient(client, base)
		if err != nil {
			return nil, nil, err
		}
		ip = infopoint.NewSource(ipc)
	}

	var routes board.RouteSource
	if s := c.String("schedule"); s != "" {
		routes = gtfs.NewScheduleSource(client, s, c.String("agency"))
	} else if ip != nil {
		routes = ip
	}

	var alerts board.AlertSource
	if s := c.String("alerts"); s != "" {
		alerts = gtfsrt.NewAlertFeed(client, s)
	} else if ip != nil {
		alerts = ip
	}

	if routes == nil || alerts == nil {
		return nil, nil, errors.New("need a route source and an alert source (--schedule/--alerts or --infopoint)")
	}
	return routes, alerts, nil
}

func fetchBoard(ctx context.Context, routes board.RouteSource, alerts board.AlertSource, filter *board.RouteFilter) board.Result[[]board.Message] {
	var (
		routeRes board.Result[[]board.Route]
		alertRes board.Result[[]board.Alert]
		wg       conc.WaitGroup
	)
	wg.Go(func() { routeRes = toResult[[]board.Route](routes.Routes(ctx)) })
	wg.Go(func() { alertRes = toResult[[]board.Alert](alerts.Alerts(ctx)) })
	wg.Wait()

	res, stats := board.BuildWithStats(routeRes, alertRes, filter)
	if stats != nil {
		log.Debug().
			Int("alerts", stats.Reconcile.Alerts).
			Int("kept", stats.Reconcile.Kept).
			Int("filtered", stats.Filtered).
			Int("messages", stats.Messages).
			Strs("unknown_route", stats.Reconcile.UnknownRoute).
			Strs("unresolvable", stats.Reconcile.Unresolvable).
			Msg("Board built")
	}
	return res
}

func toResult[T any](v T, err error) board.Result[T] {
	if err != nil {
		return board.Failed[T](err)
	}
	return board.Ready(v)
}

func writeBoard(w io.Writer, res board.Result[[]board.Message], format string) error {
	if format == "html" {
		return formatter.RenderHTML(w, res, formatter.HTMLOptions{})
	}
	data, err := formatter.BuildJSON(res, time.Now(), 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
