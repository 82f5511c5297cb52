// web/layouts/base.go - Base layout component
package layouts

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// StylesheetPath is where the bundled component styles are served.
const StylesheetPath = "/static/components.css"

// Base wraps page content in an HTML5 document.
func Base(title string, content ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    title + " - LinkSight",
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
			h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
		},
		Body: []g.Node{
			h.Main(
				h.Class("content"),
				g.Group(content),
			),
		},
	})
}
