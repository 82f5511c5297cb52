package components

import (
	"strings"

	g "maragu.dev/gomponents"
)

// Render renders a node to a string.
func Render(node g.Node) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
