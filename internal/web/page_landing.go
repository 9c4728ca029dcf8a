package web

import (
	"fmt"
	"time"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// phonePattern mirrors the client-side check on the inspection form.
const phonePattern = `^[0-9+\-\s]{7,}$`

func landingPage(year int) gomponents.Node {
	return page(pageOptions{
		Title:       fmt.Sprintf("Roof Leak Repair %s | %s", serviceArea, brandName),
		Description: "Roof leakage repair and waterproofing in KL & Selangor with a free on-site inspection and up to 5-year written warranty.",
		Scripts:     []string{"contact.js"},
	},
		siteHeader(),
		html.Main(
			heroSection(),
			statsSection(),
			problemSignsSection(),
			servicesSection(),
			processSection(),
			whyChooseSection(),
			faqSection(),
			contactSection(),
		),
		siteFooter(year),
		html.A(
			html.Class("whatsapp-float"),
			html.Href(whatsAppURL),
			gomponents.Attr("target", "_blank"),
			html.Rel("noopener"),
			html.Aria("label", "Chat on WhatsApp"),
			gomponents.Text("WhatsApp"),
		),
	)
}

func siteHeader() gomponents.Node {
	return html.Header(
		html.Class("site-header"),
		html.A(html.Class("brand"), html.Href("/"), gomponents.Text(brandName)),
		html.Nav(
			html.A(html.Href("#services"), gomponents.Text("Services")),
			html.A(html.Href("#process"), gomponents.Text("Process")),
			html.A(html.Href("#faq"), gomponents.Text("FAQ")),
			html.A(html.Class("btn btn-small"), html.Href("tel:"+phoneTel), gomponents.Text(phoneDisplay)),
		),
	)
}

func heroSection() gomponents.Node {
	promises := make([]gomponents.Node, 0, len(heroPromises))
	for _, p := range heroPromises {
		promises = append(promises, html.Li(gomponents.Text(p)))
	}

	return html.Section(
		html.Class("hero"),
		html.H1(
			gomponents.Text("#1 Choice for Roof Repair in "),
			html.Span(html.Class("accent"), gomponents.Text(serviceArea)),
		),
		html.P(html.Class("lead"), gomponents.Text("Trusted workmanship with 5-year leak-free warranty.")),
		html.Ul(html.Class("chips"), gomponents.Group(promises)),
		html.P(html.Class("phone"), html.A(html.Href("tel:"+phoneTel), gomponents.Text(phoneDisplay))),
		html.A(html.Class("btn"), html.Href("#inspection"), gomponents.Text("Book Your Free Inspection Now")),
		html.P(html.Class("muted"), gomponents.Text(replyTimeNotes)),
	)
}

func statsSection() gomponents.Node {
	items := make([]gomponents.Node, 0, len(stats))
	for _, s := range stats {
		items = append(items, html.Div(
			html.Class("stat"),
			html.Strong(gomponents.Text(s.Value)),
			html.Span(gomponents.Text(s.Label)),
		))
	}
	return html.Section(html.Class("stats"), gomponents.Group(items))
}

func problemSignsSection() gomponents.Node {
	items := make([]gomponents.Node, 0, len(problemSigns))
	for _, s := range problemSigns {
		items = append(items, html.Li(gomponents.Text(s)))
	}
	return html.Section(
		html.ID("signs"),
		html.Class("band"),
		html.H2(gomponents.Text("Signs Your Roof Needs Attention")),
		html.Ul(html.Class("checklist"), gomponents.Group(items)),
		html.P(html.Class("warning"), gomponents.Text("Small leaks spread quickly into ceilings and wiring. Have them checked early.")),
	)
}

func cards(items []titled, numbered bool) gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(items))
	for i, item := range items {
		title := item.Title
		if numbered {
			title = fmt.Sprintf("%d. %s", i+1, item.Title)
		}
		nodes = append(nodes, html.Div(
			html.Class("card"),
			html.H3(gomponents.Text(title)),
			html.P(gomponents.Text(item.Description)),
		))
	}
	return html.Div(html.Class("cards"), gomponents.Group(nodes))
}

func servicesSection() gomponents.Node {
	return html.Section(
		html.ID("services"),
		html.H2(gomponents.Text("Our Services")),
		cards(services, false),
	)
}

func processSection() gomponents.Node {
	return html.Section(
		html.ID("process"),
		html.Class("band"),
		html.H2(gomponents.Text("How It Works")),
		cards(processSteps, true),
	)
}

func whyChooseSection() gomponents.Node {
	return html.Section(
		html.ID("why"),
		html.H2(gomponents.Text("Why Choose "+brandName)),
		cards(reasons, false),
	)
}

func faqSection() gomponents.Node {
	items := make([]gomponents.Node, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, html.Details(
			html.Summary(gomponents.Text(f.Question)),
			html.P(gomponents.Text(f.Answer)),
		))
	}
	return html.Section(
		html.ID("faq"),
		html.Class("band"),
		html.H2(gomponents.Text("Frequently Asked Questions")),
		gomponents.Group(items),
	)
}

func contactSection() gomponents.Node {
	options := []gomponents.Node{html.Option(html.Value(""), gomponents.Text("Select preferred time"))}
	for _, t := range preferredTimes {
		options = append(options, html.Option(html.Value(t), gomponents.Text(t)))
	}

	return html.Section(
		html.ID("inspection"),
		html.H2(gomponents.Text("Get Your Free Roof Inspection")),
		html.P(html.Class("lead"), gomponents.Text("Contact us today for a free on-site inspection and quotation")),
		html.Div(
			html.Class("contact"),
			html.Div(
				html.Class("card"),
				html.H3(gomponents.Text("Request Free Inspection")),
				statusBox("inspection-status"),
				html.Form(
					html.ID("inspection-form"),
					html.Method("post"),
					html.Action("/api/inspections-insert"),
					field("name", "Name *", html.Input(html.Type("text"), html.ID("name"), html.Name("name"), html.Required(), html.AutoComplete("name"))),
					field("phone", "Phone *", html.Input(html.Type("tel"), html.ID("phone"), html.Name("phone"), html.Required(), html.Pattern(phonePattern), html.AutoComplete("tel"))),
					field("address", "Address/Area", html.Input(html.Type("text"), html.ID("address"), html.Name("address"))),
					field("preferred_time", "Preferred Time", html.Select(html.ID("preferred_time"), html.Name("preferred_time"), gomponents.Group(options))),
					field("message", "Message", html.Textarea(
						html.ID("message"),
						html.Name("message"),
						html.Rows("4"),
						html.Placeholder("Describe your issue: dripping during rain, stains on ceiling, etc."),
					)),
					html.Button(html.Type("submit"), html.Class("btn"), gomponents.Text("Request Free Inspection")),
				),
			),
			html.Div(
				html.Class("card"),
				html.H3(gomponents.Text("Talk to Us Directly")),
				html.P(html.A(html.Href("tel:"+phoneTel), gomponents.Text(phoneDisplay))),
				html.P(html.A(html.Href(whatsAppURL), gomponents.Text("Message us on WhatsApp"))),
				html.P(gomponents.Text("Serving Kuala Lumpur and Selangor from Klang.")),
				html.P(html.Class("muted"), gomponents.Text(replyTimeNotes)),
			),
		),
	)
}

func siteFooter(year int) gomponents.Node {
	if year == 0 {
		year = time.Now().Year()
	}
	return html.Footer(
		html.Class("site-footer"),
		html.P(gomponents.Textf("© %d %s. All rights reserved.", year, brandName)),
	)
}
