package formatter

import (
	"html/template"
	"io"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"github.com/theoremus-urban-solutions/detour-board/board"
)

// Fixed board rows.
const (
	FailedText = "Failed to load message information."
	EmptyText  = "There are no detours currently in effect."
)

// HTMLOptions customizes the rendered page.
type HTMLOptions struct {
	Title string
	// RefreshSeconds adds a meta refresh when positive.
	RefreshSeconds int
}

type labelView struct {
	Key          string
	Abbreviation string
	Style        template.CSS
}

type rowView struct {
	Key    string
	Labels []labelView // nil for status rows
	Class  string
	Header template.HTML
	Body   template.HTML
}

type pageView struct {
	Title          string
	RefreshSeconds int
	Rows           []rowView
}

var policy = bluemonday.UGCPolicy()

var boardTemplate = template.Must(template.New("board").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
{{- if gt .RefreshSeconds 0}}
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
{{- end}}
<title>{{.Title}}</title>
<style>
.public-message-board { border-collapse: collapse; width: 100%; font-family: sans-serif; }
.public-message-board th { vertical-align: top; padding: 0.25em; }
.public-message-board td { padding: 0.25em 0.5em; border-bottom: 1px solid #ddd; }
.route-abbreviation { min-width: 3em; margin-bottom: 0.25em; padding: 0.25em; text-align: center; font-weight: bold; background-color: #333; color: #fff; }
.priority-0, .priority-1 { border-left: 0.5em solid #c00; }
.priority-2 { border-left: 0.5em solid #e80; }
.message-header { font-weight: bold; }
</style>
</head>
<body>
<table class="public-message-board">
<tbody>
{{- range .Rows}}
<tr data-key="{{.Key}}">
{{- if .Labels}}
<th scope="row">
{{- range .Labels}}
<div class="route-abbreviation" data-key="{{.Key}}"{{if .Style}} style="{{.Style}}"{{end}}>{{.Abbreviation}}</div>
{{- end}}
</th>
<td{{if .Class}} class="{{.Class}}"{{end}}>
{{- else}}
<td colspan="2">
{{- end}}
{{- if .Header}}<div class="message-header">{{.Header}}</div>{{end}}{{.Body}}</td>
</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// RenderHTML writes the message board for res. A pending board has no rows.
func RenderHTML(w io.Writer, res board.Result[[]board.Message], opts HTMLOptions) error {
	if opts.Title == "" {
		opts.Title = "Detours"
	}
	return boardTemplate.Execute(w, pageView{
		Title:          opts.Title,
		RefreshSeconds: opts.RefreshSeconds,
		Rows:           rows(res),
	})
}

func rows(res board.Result[[]board.Message]) []rowView {
	switch res.State() {
	case board.StateFailed:
		return []rowView{statusRow("failed", FailedText)}
	case board.StateReady:
	default:
		return nil
	}

	msgs, _ := res.Value()
	if len(msgs) == 0 {
		return []rowView{statusRow("empty", EmptyText)}
	}
	out := make([]rowView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageRow(m))
	}
	return out
}

func statusRow(key, text string) rowView {
	return rowView{Key: key, Body: template.HTML(template.HTMLEscapeString(text))}
}

func messageRow(m board.Message) rowView {
	row := rowView{
		Key:    m.ID,
		Labels: labels(m),
		Header: sanitize(m.Header),
		Body:   sanitize(m.Description),
	}
	if m.Priority != nil {
		row.Class = "priority priority-" + strconv.Itoa(*m.Priority)
	}
	return row
}

// labels renders route labels. A general message gets a synthetic ALL label.
func labels(m board.Message) []labelView {
	if len(m.Routes) == 0 {
		return []labelView{{Key: "all-" + m.ID, Abbreviation: "ALL"}}
	}
	out := make([]labelView, 0, len(m.Routes))
	for _, r := range m.Routes {
		out = append(out, labelView{
			Key:          r.ID,
			Abbreviation: r.Abbreviation,
			Style:        routeStyle(r),
		})
	}
	return out
}

func routeStyle(r board.MessageRoute) template.CSS {
	var s string
	if c := hexColor(r.Color); c != "" {
		s += "background-color: #" + c + ";"
	}
	if c := hexColor(r.TextColor); c != "" {
		if s != "" {
			s += " "
		}
		s += "color: #" + c + ";"
	}
	return template.CSS(s)
}

// hexColor returns *c only when it is 3 or 6 hex digits.
func hexColor(c *string) string {
	if c == nil {
		return ""
	}
	if n := len(*c); n != 3 && n != 6 {
		return ""
	}
	for _, r := range *c {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return ""
		}
	}
	return *c
}

func sanitize(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}
