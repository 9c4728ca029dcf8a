package web

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// adminPage is a shell; admin.js drives login and every data view
// against the /api endpoints.
func adminPage() gomponents.Node {
	return page(pageOptions{
		Title:   "Admin | " + brandName,
		NoIndex: true,
		Scripts: []string{"admin.js"},
	},
		html.Main(
			html.Class("admin"),
			html.H1(gomponents.Text(brandName+" Admin")),
			html.Section(
				html.ID("login-panel"),
				html.Class("card narrow"),
				html.H2(gomponents.Text("Sign in")),
				statusBox("login-status"),
				html.Form(
					html.ID("login-form"),
					field("username", "Username", html.Input(html.Type("text"), html.ID("username"), html.Name("username"), html.Required(), html.AutoComplete("username"))),
					field("password", "Password", html.Input(html.Type("password"), html.ID("password"), html.Name("password"), html.Required(), html.AutoComplete("current-password"))),
					html.Button(html.Type("submit"), html.Class("btn"), gomponents.Text("Sign in")),
				),
			),
			html.Section(
				html.ID("data-panel"),
				html.Hidden("hidden"),
				html.Div(
					html.Class("toolbar"),
					html.Span(html.ID("db-status"), html.Class("badge"), gomponents.Text("Checking database…")),
					html.Button(html.ID("logout"), html.Type("button"), html.Class("btn btn-small"), gomponents.Text("Sign out")),
				),
				html.Div(
					html.Class("admin-grid"),
					html.Aside(
						html.H2(gomponents.Text("Tables")),
						html.Ul(html.ID("table-list"), html.Class("table-list")),
					),
					html.Div(
						html.Div(
							html.Class("toolbar"),
							html.Input(html.Type("search"), html.ID("search"), html.Placeholder("Search name, phone, address, message"), html.Aria("label", "Search")),
							html.Select(
								html.ID("sort-dir"),
								html.Aria("label", "Sort direction"),
								html.Option(html.Value("desc"), gomponents.Text("Newest first")),
								html.Option(html.Value("asc"), gomponents.Text("Oldest first")),
							),
						),
						statusBox("data-status"),
						html.Div(html.Class("table-wrap"), html.Table(html.ID("data-table"))),
						html.Div(
							html.Class("pager"),
							html.Button(html.ID("prev-page"), html.Type("button"), html.Class("btn btn-small"), gomponents.Text("Previous")),
							html.Span(html.ID("page-info")),
							html.Button(html.ID("next-page"), html.Type("button"), html.Class("btn btn-small"), gomponents.Text("Next")),
						),
					),
				),
				html.Section(
					html.Class("card"),
					html.H2(gomponents.Text("Live leads")),
					html.Ul(html.ID("live-feed"), html.Class("feed")),
				),
			),
		),
	)
}
