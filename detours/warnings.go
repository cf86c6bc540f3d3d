package detours

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// Warning type constants
const (
	WarningUnknownRoute      = "unknown_route"
	WarningUnresolvable      = "unresolvable_entity"
	WarningDuplicateRouteRef = "duplicate_route_ref"
)

const maxExamples = 3

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects pipeline drop warnings and logs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, maxExamples),
		}
	}

	info := w.warnings[warningType]
	info.count++

	if len(info.examples) < maxExamples {
		info.examples = append(info.examples, exampleID)
	}
}

// AddStats records every drop reported by one pipeline run.
func (w *WarningAggregator) AddStats(stats board.Stats) {
	for _, id := range stats.Reconcile.UnknownRoute {
		w.Add(WarningUnknownRoute, id)
	}
	for _, id := range stats.Reconcile.Unresolvable {
		w.Add(WarningUnresolvable, id)
	}
	for _, id := range stats.Reconcile.DuplicateRouteRef {
		w.Add(WarningDuplicateRouteRef, id)
	}
}

// Count returns how many times warningType was added.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll writes one warning per type, in a stable order.
func (w *WarningAggregator) LogAll(logger zerolog.Logger) {
	if len(w.warnings) == 0 {
		return
	}

	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	slices.Sort(types)

	for _, warningType := range types {
		info := w.warnings[warningType]
		description, action := describeWarning(warningType)
		logger.Warn().
			Str("warning", warningType).
			Int("occurrences", info.count).
			Str("examples", strings.Join(info.examples, ", ")).
			Msgf("Board input has %s. %s", description, action)
	}
}

func describeWarning(warningType string) (description, action string) {
	switch warningType {
	case WarningUnknownRoute:
		return "alerts referencing routes missing from the route list", "Dropping the whole alert"
	case WarningUnresolvable:
		return "alerts scoped to trips or stops without a route", "Dropping the whole alert"
	case WarningDuplicateRouteRef:
		return "alerts listing the same route more than once", "Keeping the first reference"
	default:
		return "unknown issue", "Continuing with fallback behavior"
	}
}
