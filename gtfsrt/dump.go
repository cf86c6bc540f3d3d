package gtfsrt

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/prototext"
)

// DumpText renders a feed as indented protobuf text for debugging.
func DumpText(fm *gtfsrtpb.FeedMessage) string {
	return prototext.MarshalOptions{Multiline: true, Indent: "  "}.Format(fm)
}
