package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksight/internal/domain"
	"linksight/web/components"
	"linksight/web/layouts"
)

func TestCardProps(t *testing.T) {
	d := &domain.Dataset{ID: "census-2020", Name: "Census 2020", Description: "Population data", IconURL: "/img/a.png"}
	assert.Equal(t, components.DatasetCardProps{
		IconURL:     "/img/a.png",
		Name:        "Census 2020",
		Description: "Population data",
	}, CardProps(d))

	d.Featured = true
	assert.Equal(t, FeaturedClass, CardProps(d).ClassName)
}

func TestCatalogPage(t *testing.T) {
	datasets := []*domain.Dataset{
		{ID: "census-2020", Name: "Census 2020", Description: "Population data", IconURL: "/img/a.png", Featured: true},
		{ID: "psgc", Name: "PSGC", Description: "Geographic codes", IconURL: "/img/b.png"},
	}

	out, err := components.Render(CatalogPage(datasets))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Datasets - LinkSight</title>")
	assert.Contains(t, out, layouts.StylesheetPath)
	assert.Equal(t, 2, strings.Count(out, `<h3 class="name">`))
	assert.Less(t, strings.Index(out, "Census 2020"), strings.Index(out, "PSGC"))
	assert.Equal(t, 1, strings.Count(out, " featured\""))
}

func TestCatalogList_Empty(t *testing.T) {
	out, err := components.Render(CatalogList(nil))
	require.NoError(t, err)
	assert.Equal(t, `<p class="empty">No datasets available.</p>`, out)
}
