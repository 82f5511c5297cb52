package styles

import "linksight/web/theme"

// Dataset card regions.
const (
	RegionIcon    = "icon"
	RegionInfo    = "info"
	RegionActions = "actions"
	RegionToggle  = "toggle"
)

// DatasetCardSheet lays the card out as a fixed-height row: icon and toggle
// keep their width, the info block takes the remaining space.
var DatasetCardSheet = Sheet{
	Name: "dataset-card",
	Root: []Declaration{
		Decl("display", "flex"),
		Decl("background", theme.Monochrome[0]),
		Decl("align-items", "center"),
		Decl("height", "80px"),
	},
	Rules: []Rule{
		{
			Region:       RegionInfo,
			Selectors:    []string{".info"},
			Declarations: []Declaration{Decl("flex", "1")},
		},
		{
			Region:    RegionInfo,
			Selectors: []string{".name", ".description"},
			Declarations: []Declaration{
				Decl("margin", "0"),
			},
		},
		{
			Region:       RegionInfo,
			Selectors:    []string{".-small"},
			Declarations: []Declaration{Decl("font-size", "0.875em")},
		},
		{
			Region:    RegionIcon,
			Selectors: []string{".icon"},
			Declarations: []Declaration{
				Decl("flex", "none"),
				Decl("padding", "0 20px"),
			},
		},
		{
			Region:    RegionIcon,
			Selectors: []string{".icon", ".icon img"},
			Declarations: []Declaration{
				Decl("width", "80px"),
				Decl("height", "80px"),
			},
		},
		{
			Region:    RegionActions,
			Selectors: []string{".actions a"},
			Declarations: []Declaration{
				Decl("color", "inherit"),
			},
		},
		{
			Region:    RegionActions,
			Selectors: []string{".actions .separator"},
			Declarations: []Declaration{
				Decl("padding", "0 4px"),
			},
		},
		{
			Region:    RegionToggle,
			Selectors: []string{".toggle"},
			Declarations: []Declaration{
				Decl("flex", "none"),
				Decl("padding", "0 20px"),
			},
		},
	},
}
