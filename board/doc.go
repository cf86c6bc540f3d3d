/*
Package board reconciles transit routes and service alerts into the ordered
message list shown on a detour board.

Both upstream kinds (the InfoPoint REST API and GTFS schedule + GTFS-Realtime
alerts) are adapted into the same intermediate records, Route and Alert, before
anything here runs. The pipeline is a pure function of its inputs:

	routes, alerts, filter -> Reconcile -> Filter -> Sort -> Normalize -> []Message

Every stage returns new slices and never touches its arguments, so the same
snapshots can be fed to any number of boards concurrently.

# Pending, failed and ready

Upstream data arrives asynchronously. Each input is a Result: Pending until the
first fetch completes (or forever when the source is not configured), Failed
when the latest fetch errored, Ready otherwise. Build merges the two inputs:

	either Pending -> Pending
	either Failed  -> Failed
	both Ready     -> Ready(Run(...))

A Ready result with zero messages is a valid outcome and is distinct from Failed.
*/
package board
