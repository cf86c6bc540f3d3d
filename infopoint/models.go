package infopoint

// Route is an element of Routes/GetAllRoutes.
type Route struct {
	RouteID           int    `json:"RouteId"`
	RouteAbbreviation string `json:"RouteAbbreviation"`
	LongName          string `json:"LongName"`
	ShortName         string `json:"ShortName"`
	Color             string `json:"Color"`
	TextColor         string `json:"TextColor"`
	SortOrder         *int   `json:"SortOrder"`
	IsVisible         bool   `json:"IsVisible"`
}

// PublicMessage is an element of PublicMessages/GetCurrentMessages. A nil
// Routes list marks a general message.
type PublicMessage struct {
	MessageID    int    `json:"MessageId"`
	Message      string `json:"Message"`
	Priority     *int   `json:"Priority"`
	Routes       []int  `json:"Routes"`
	FromDate     string `json:"FromDate"`
	ToDate       string `json:"ToDate"`
	PublicAccess int    `json:"PublicAccess"`
}
