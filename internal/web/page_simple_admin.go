package web

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

var leadColumns = []string{"Received", "Name", "Phone", "Address", "Preferred time", "Message", "Source", "UTM source"}

func simpleAdminPage() gomponents.Node {
	headers := make([]gomponents.Node, 0, len(leadColumns))
	for _, c := range leadColumns {
		headers = append(headers, html.Th(gomponents.Text(c)))
	}

	return page(pageOptions{
		Title:   "Leads | " + brandName,
		NoIndex: true,
		Scripts: []string{"simple-admin.js"},
	},
		html.Main(
			html.Class("admin"),
			html.H1(gomponents.Text("Inspection requests")),
			html.Section(
				html.Class("card narrow"),
				statusBox("simple-status"),
				html.Form(
					html.ID("simple-form"),
					field("simple-password", "Password", html.Input(html.Type("password"), html.ID("simple-password"), html.Name("password"), html.AutoComplete("current-password"))),
					html.Button(html.Type("submit"), html.Class("btn"), gomponents.Text("Show leads")),
				),
			),
			html.Section(
				html.ID("leads-panel"),
				html.Hidden("hidden"),
				html.P(html.ID("leads-count"), html.Class("muted")),
				html.Div(
					html.Class("table-wrap"),
					html.Table(
						html.THead(html.Tr(gomponents.Group(headers))),
						html.TBody(html.ID("leads-body")),
					),
				),
			),
		),
	)
}
