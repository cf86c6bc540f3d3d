package board

import "context"

// Route is a transit line as known to the current route snapshot.
type Route struct {
	ID           string
	Abbreviation string
	Color        *string // hex without '#', nil when upstream has none
	TextColor    *string
	SortOrder    *int
}

// InformedEntity is one selector of an alert. A non-empty RouteID is a route
// reference. Without one, the entity is either an agency-wide marker or scoped
// to a trip or stop the board cannot place on a route.
type InformedEntity struct {
	RouteID  string
	AgencyID string
	TripID   string
	StopID   string
}

// AgencyWide reports whether the entity is an agency-wide marker.
func (e InformedEntity) AgencyWide() bool {
	return e.RouteID == "" && e.TripID == "" && e.StopID == "" && e.AgencyID != ""
}

// Unresolvable reports whether the entity names neither a route nor a whole
// agency.
func (e InformedEntity) Unresolvable() bool {
	return e.RouteID == "" && !e.AgencyWide()
}

// Translation is a single localized text.
type Translation struct {
	Text     string
	Language string
}

// TranslatedString is an ordered list of translations.
type TranslatedString []Translation

// First returns the text of the first translation, or "".
func (ts TranslatedString) First() string {
	if len(ts) == 0 {
		return ""
	}
	return ts[0].Text
}

// Text builds a TranslatedString holding one untagged translation.
func Text(s string) TranslatedString {
	return TranslatedString{{Text: s}}
}

// Alert is the source-independent shape of a detour or service notice.
// An alert without route references is general: it applies to every route.
type Alert struct {
	ID               string
	Priority         *int // lower is more severe
	Header           TranslatedString
	Description      TranslatedString
	InformedEntities []InformedEntity
}

// ResolvedAlert is an alert whose route references were resolved against a
// route snapshot.
type ResolvedAlert struct {
	Alert  Alert
	Routes []Route
}

// General reports whether the alert applies to all routes.
func (a ResolvedAlert) General() bool { return len(a.Routes) == 0 }

// MessageRoute is the route shape handed to presentation.
type MessageRoute struct {
	ID           string  `json:"id"`
	Abbreviation string  `json:"abbreviation"`
	Color        *string `json:"color"`
	TextColor    *string `json:"textColor"`
}

// Message is the canonical, display-ready unit. Empty Routes means general.
type Message struct {
	ID          string         `json:"id"`
	Header      string         `json:"header"`
	Description string         `json:"description"`
	Priority    *int           `json:"priority,omitempty"`
	Routes      []MessageRoute `json:"routes"`
}

// RouteSource produces a fresh route snapshot.
type RouteSource interface {
	Routes(ctx context.Context) ([]Route, error)
}

// AlertSource produces a fresh alert snapshot.
type AlertSource interface {
	Alerts(ctx context.Context) ([]Alert, error)
}
