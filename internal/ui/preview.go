package ui

import (
	. "github.com/maragudk/gomponents"
	hx "github.com/maragudk/gomponents-htmx"
	. "github.com/maragudk/gomponents/components"
	. "github.com/maragudk/gomponents/html"
)

// PreviewPage returns a Node that renders a page showing the site footer
// along with a picker for switching its language.
func PreviewPage(props PreviewPageProps) Node {
	title := "Footer preview"
	if props.Footer.Config.Title != "" {
		title = props.Footer.Config.Title + " - " + title
	}

	return HTML5(HTML5Props{
		Title:       title,
		Description: "Preview of the documentation site footer.",
		Language:    props.Footer.Language,
		Head: []Node{
			Script(Src("https://unpkg.com/htmx.org@2.0.2")),
			Script(Src("https://buttons.github.io/buttons.js"), Async(), Defer()),
		},
		Body: []Node{
			Main(
				If(
					len(props.Languages) > 1,
					Div(
						Class("language-picker"),
						Label(
							For("lang"),
							Text("Language"),
						),
						Select(
							ID("lang"),
							Name("lang"),
							hx.Get("/footer"),
							hx.Trigger("change"),
							hx.Target("#footer"),
							hx.Swap("outerHTML"),
							Group(Map(props.Languages, func(code string) Node {
								return Option(
									Value(code),
									If(code == props.Footer.Language, Selected()),
									Text(code),
								)
							})),
						),
					),
				),
			),
			SiteFooter(props.Footer),
		},
	})
}

// PreviewPageProps holds data needed for rendering the preview page.
type PreviewPageProps struct {
	Footer FooterProps
	// Languages lists the language codes offered by the picker. The picker is
	// hidden when there is nothing to switch between.
	Languages []string
}
