package styles

import "linksight/web/theme"

// ToggleSheet styles the switch control. The checkbox stays in the document
// for accessibility but is visually hidden behind the track.
var ToggleSheet = Sheet{
	Name: "toggle-switch",
	Root: []Declaration{
		Decl("position", "relative"),
		Decl("display", "inline-block"),
		Decl("width", "40px"),
		Decl("height", "22px"),
	},
	Rules: []Rule{
		{
			Region:    "input",
			Selectors: []string{"input"},
			Declarations: []Declaration{
				Decl("opacity", "0"),
				Decl("width", "0"),
				Decl("height", "0"),
			},
		},
		{
			Region:    "track",
			Selectors: []string{".toggle-track"},
			Declarations: []Declaration{
				Decl("position", "absolute"),
				Decl("inset", "0"),
				Decl("border-radius", "11px"),
				Decl("background", theme.MonochromeAt(3)),
				Decl("cursor", "pointer"),
			},
		},
		{
			Region:       "track",
			Selectors:    []string{"input:checked + .toggle-track"},
			Declarations: []Declaration{Decl("background", theme.MonochromeAt(6))},
		},
		{
			Region:    "knob",
			Selectors: []string{".toggle-knob"},
			Declarations: []Declaration{
				Decl("position", "absolute"),
				Decl("top", "2px"),
				Decl("left", "2px"),
				Decl("width", "18px"),
				Decl("height", "18px"),
				Decl("border-radius", "50%"),
				Decl("background", theme.MonochromeAt(0)),
				Decl("transition", "transform 0.15s ease"),
			},
		},
		{
			Region:       "knob",
			Selectors:    []string{"input:checked + .toggle-track .toggle-knob"},
			Declarations: []Declaration{Decl("transform", "translateX(18px)")},
		},
		{
			Region:    "glyph",
			Selectors: []string{".toggle-glyph"},
			Declarations: []Declaration{
				Decl("font-size", "10px"),
				Decl("line-height", "18px"),
				Decl("color", theme.MonochromeAt(5)),
			},
		},
	},
}
