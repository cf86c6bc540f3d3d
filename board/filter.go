package board

import (
	"slices"
	"strings"
)

// RouteFilter is a whitelist of route abbreviations. A nil *RouteFilter means
// no filtering; an empty one matches nothing.
type RouteFilter struct {
	abbreviations map[string]struct{}
}

// NewRouteFilter builds a whitelist from the given abbreviations.
func NewRouteFilter(abbreviations ...string) *RouteFilter {
	f := &RouteFilter{abbreviations: make(map[string]struct{}, len(abbreviations))}
	for _, a := range abbreviations {
		f.abbreviations[a] = struct{}{}
	}
	return f
}

// ParseRouteFilter parses a comma-separated list of abbreviations. Blank entries
// are removed. When the value is absent the result is nil (no filtering); a
// present but blank value yields an empty whitelist.
func ParseRouteFilter(raw string, present bool) *RouteFilter {
	if !present {
		return nil
	}
	parts := strings.Split(raw, ",")
	abbrs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			abbrs = append(abbrs, p)
		}
	}
	return NewRouteFilter(abbrs...)
}

// Allows reports whether abbreviation is whitelisted.
func (f *RouteFilter) Allows(abbreviation string) bool {
	if f == nil {
		return true
	}
	_, ok := f.abbreviations[abbreviation]
	return ok
}

// Abbreviations returns the whitelist sorted, or nil for a nil filter.
func (f *RouteFilter) Abbreviations() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, len(f.abbreviations))
	for a := range f.abbreviations {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Key is a stable identifier for caching: "*" for no filtering.
func (f *RouteFilter) Key() string {
	if f == nil {
		return "*"
	}
	return "[" + strings.Join(f.Abbreviations(), ",") + "]"
}

// Filter applies the whitelist. General alerts always pass unchanged. Other
// alerts pass only when at least one route is whitelisted, and keep only their
// whitelisted routes.
func Filter(alerts []ResolvedAlert, filter *RouteFilter) []ResolvedAlert {
	out := make([]ResolvedAlert, 0, len(alerts))
	if filter == nil {
		return append(out, alerts...)
	}
	for _, a := range alerts {
		if a.General() {
			out = append(out, a)
			continue
		}
		kept := make([]Route, 0, len(a.Routes))
		for _, r := range a.Routes {
			if filter.Allows(r.Abbreviation) {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, ResolvedAlert{Alert: a.Alert, Routes: kept})
	}
	return out
}
