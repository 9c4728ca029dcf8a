package web

import (
	"net/http"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const staticPrefix = "/static/"

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

type pageOptions struct {
	Title       string
	Description string
	NoIndex     bool
	Scripts     []string
}

func page(opts pageOptions, body ...gomponents.Node) gomponents.Node {
	head := []gomponents.Node{
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
		html.TitleEl(gomponents.Text(opts.Title)),
		html.Link(html.Rel("icon"), html.Href("data:,")),
		html.Link(html.Rel("stylesheet"), html.Href(staticPrefix+"css/site.css")),
	}
	if opts.Description != "" {
		head = append(head, html.Meta(html.Name("description"), html.Content(opts.Description)))
	}
	if opts.NoIndex {
		head = append(head, html.Meta(html.Name("robots"), html.Content("noindex, nofollow")))
	}
	for _, src := range opts.Scripts {
		head = append(head, html.Script(html.Src(staticPrefix+"js/"+src), html.Defer()))
	}

	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(gomponents.Group(head)),
			html.Body(gomponents.Group(body)),
		),
	)
}

func field(id, label string, input gomponents.Node) gomponents.Node {
	return html.Div(
		html.Class("field"),
		html.Label(html.For(id), gomponents.Text(label)),
		input,
	)
}

// statusBox is filled in by page scripts; aria-live announces updates.
func statusBox(id string) gomponents.Node {
	return html.Div(html.ID(id), html.Class("status"), html.Aria("live", "polite"))
}
