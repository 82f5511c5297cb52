// web/components/toggle.go - Binary switch control
package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"linksight/web/styles"
)

// ToggleProps configures a Toggle. The on/off state lives in the browser;
// Checked only sets the initial position.
type ToggleProps struct {
	Icons   bool
	Checked bool
	Name    string
	Label   string
}

// Toggle renders a checkbox styled as a switch. Glyphs are only placed inside
// the knob when Icons is set.
func Toggle(props ToggleProps) g.Node {
	return h.Label(
		h.Class("toggle-switch "+styles.ToggleSheet.ClassName()),
		h.Data("icons", strconv.FormatBool(props.Icons)),
		h.Input(
			h.Type("checkbox"),
			h.Role("switch"),
			g.If(props.Name != "", h.Name(props.Name)),
			g.If(props.Label != "", h.Aria("label", props.Label)),
			g.If(props.Checked, h.Checked()),
		),
		h.Span(
			h.Class("toggle-track"),
			h.Span(
				h.Class("toggle-knob"),
				g.If(props.Icons, g.Group([]g.Node{
					h.Span(h.Class("toggle-glyph -on"), g.Text("✓")),
					h.Span(h.Class("toggle-glyph -off"), g.Text("✕")),
				})),
			),
		),
	)
}
