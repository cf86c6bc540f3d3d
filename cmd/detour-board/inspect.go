package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/detour-board/gtfsrt"
	"github.com/theoremus-urban-solutions/detour-board/internal"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
	"github.com/theoremus-urban-solutions/detour-board/utils"
)

func inspectFeedCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect-feed",
		Usage:     "print a GTFS-RT feed as protobuf text",
		ArgsUsage: "<url|file>",
		Action: func(c *cli.Context) error {
			internal.InitLoggingTo(os.Stderr, c.String("log-level"), "console")
			if c.NArg() != 1 {
				return errors.New("expected exactly one feed location")
			}
			fm, err := gtfsrt.NewAlertFeed(upstream.NewClient(nil), c.Args().First()).Feed(c.Context)
			if err != nil {
				return err
			}
			fmt.Print(gtfsrt.DumpText(fm))
			writeFeedSummary(os.Stdout, fm)
			return nil
		},
	}
}

func writeFeedSummary(w io.Writer, fm *gtfsrtpb.FeedMessage) {
	if ts := fm.GetHeader().GetTimestamp(); ts > 0 {
		fmt.Fprintf(w, "# feed timestamp %s\n", utils.Iso8601FromUnixSeconds(int64(ts)))
	}
	fmt.Fprintf(w, "# %d alerts\n", len(gtfsrt.AdaptAlerts(fm)))
}
