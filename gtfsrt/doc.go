// Package gtfsrt decodes GTFS-Realtime service alert feeds.
//
// Only the Alert part of each FeedEntity is used. Trip updates and vehicle
// positions in a combined feed are ignored. GTFS-RT has no numeric alert
// priority, so adapted alerts never carry one.
package gtfsrt
