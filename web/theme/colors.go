// web/theme/colors.go - Shared color ramps
package theme

// Monochrome is the grayscale ramp shared by every component.
// Index 0 is the lightest tone and serves as the base background.
var Monochrome = []string{
	"#ffffff",
	"#f5f6f7",
	"#e6e8ea",
	"#c9cdd1",
	"#9aa1a8",
	"#6b737b",
	"#41474d",
	"#1f2326",
}

// MonochromeAt returns the tone at index i, clamped to the ramp bounds.
func MonochromeAt(i int) string {
	if i < 0 {
		return Monochrome[0]
	}
	if i >= len(Monochrome) {
		return Monochrome[len(Monochrome)-1]
	}
	return Monochrome[i]
}
