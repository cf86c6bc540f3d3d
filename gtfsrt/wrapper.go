package gtfsrt

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

var unmarshalOpts = proto.UnmarshalOptions{
	AllowPartial:   true,
	DiscardUnknown: true,
}

// DecodeFeed parses a GTFS-RT FeedMessage. Feeds missing required fields are
// accepted; producers routinely omit them.
func DecodeFeed(data []byte) (*gtfsrtpb.FeedMessage, error) {
	fm := &gtfsrtpb.FeedMessage{}
	if err := unmarshalOpts.Unmarshal(data, fm); err != nil {
		return nil, fmt.Errorf("decode gtfs-rt feed: %w", err)
	}
	return fm, nil
}

// AdaptAlerts extracts service alerts from a feed in entity order. Deleted
// entities and entities without an alert are skipped.
func AdaptAlerts(fm *gtfsrtpb.FeedMessage) []board.Alert {
	alerts := []board.Alert{}
	for _, e := range fm.GetEntity() {
		if e.GetIsDeleted() || e.Alert == nil {
			continue
		}
		a := e.Alert
		ra := board.Alert{
			ID:          e.GetId(),
			Header:      translatedString(a.HeaderText),
			Description: translatedString(a.DescriptionText),
		}
		for _, ie := range a.InformedEntity {
			ra.InformedEntities = append(ra.InformedEntities, informedEntity(ie))
		}
		alerts = append(alerts, ra)
	}
	return alerts
}

// informedEntity keeps trip and stop scoping. A trip descriptor's route_id
// stands in for a missing top-level route_id.
func informedEntity(ie *gtfsrtpb.EntitySelector) board.InformedEntity {
	e := board.InformedEntity{
		RouteID:  ie.GetRouteId(),
		AgencyID: ie.GetAgencyId(),
		StopID:   ie.GetStopId(),
	}
	if trip := ie.GetTrip(); trip != nil {
		if e.RouteID == "" {
			e.RouteID = trip.GetRouteId()
		}
		e.TripID = trip.GetTripId()
	}
	return e
}

func translatedString(ts *gtfsrtpb.TranslatedString) board.TranslatedString {
	if ts == nil {
		return nil
	}
	out := make(board.TranslatedString, 0, len(ts.Translation))
	for _, t := range ts.Translation {
		out = append(out, board.Translation{Text: t.GetText(), Language: t.GetLanguage()})
	}
	return out
}
