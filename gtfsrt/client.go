package gtfsrt

import (
	"context"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

// AlertFeed is a service alerts feed read over HTTP or from a local file.
type AlertFeed struct {
	client   *upstream.Client
	location string
}

var _ board.AlertSource = (*AlertFeed)(nil)

func NewAlertFeed(client *upstream.Client, location string) *AlertFeed {
	return &AlertFeed{client: client, location: location}
}

// Alerts fetches the feed and returns its alerts.
func (f *AlertFeed) Alerts(ctx context.Context) ([]board.Alert, error) {
	fm, err := f.Feed(ctx)
	if err != nil {
		return nil, err
	}
	return AdaptAlerts(fm), nil
}

// Feed fetches and decodes the raw feed message.
func (f *AlertFeed) Feed(ctx context.Context) (*gtfsrtpb.FeedMessage, error) {
	body, err := f.client.Fetch(ctx, f.location)
	if err != nil {
		return nil, err
	}
	return DecodeFeed(body)
}
