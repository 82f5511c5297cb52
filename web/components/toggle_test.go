package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksight/web/styles"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name       string
		props      ToggleProps
		wantIcons  string
		wantGlyphs int
	}{
		{name: "without glyphs", props: ToggleProps{}, wantIcons: "false", wantGlyphs: 0},
		{name: "with glyphs", props: ToggleProps{Icons: true}, wantIcons: "true", wantGlyphs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := parseFragment(t, Toggle(tt.props))
			require.Len(t, nodes, 1)
			root := nodes[0]

			assert.Equal(t, "label", root.Data)
			assert.Equal(t, []string{"toggle-switch", styles.ToggleSheet.ClassName()}, classes(root))

			icons, _ := attr(root, "data-icons")
			assert.Equal(t, tt.wantIcons, icons)

			knobs := findAll(root, byClass("toggle-knob"))
			require.Len(t, knobs, 1)
			assert.Len(t, findAll(knobs[0], byClass("toggle-glyph")), tt.wantGlyphs)
		})
	}
}

func TestToggle_Input(t *testing.T) {
	t.Run("unchecked by default", func(t *testing.T) {
		nodes := parseFragment(t, Toggle(ToggleProps{}))
		require.Len(t, nodes, 1)

		inputs := findAll(nodes[0], byTag("input"))
		require.Len(t, inputs, 1)

		typ, _ := attr(inputs[0], "type")
		assert.Equal(t, "checkbox", typ)
		role, _ := attr(inputs[0], "role")
		assert.Equal(t, "switch", role)

		_, checked := attr(inputs[0], "checked")
		assert.False(t, checked)
		_, named := attr(inputs[0], "name")
		assert.False(t, named)
	})

	t.Run("initial state and name", func(t *testing.T) {
		nodes := parseFragment(t, Toggle(ToggleProps{Checked: true, Name: "enabled", Label: "Enable dataset"}))
		require.Len(t, nodes, 1)

		inputs := findAll(nodes[0], byTag("input"))
		require.Len(t, inputs, 1)

		_, checked := attr(inputs[0], "checked")
		assert.True(t, checked)
		name, _ := attr(inputs[0], "name")
		assert.Equal(t, "enabled", name)
		label, _ := attr(inputs[0], "aria-label")
		assert.Equal(t, "Enable dataset", label)
	})
}
