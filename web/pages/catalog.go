// web/pages/catalog.go - Dataset catalog page
package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"linksight/internal/domain"
	"linksight/web/components"
	"linksight/web/layouts"
)

// FeaturedClass scopes the cards of featured datasets.
const FeaturedClass = "featured"

// CatalogPage renders every dataset as a card, in catalog order.
func CatalogPage(datasets []*domain.Dataset) g.Node {
	return layouts.Base("Datasets",
		h.H1(g.Text("Datasets")),
		CatalogList(datasets),
	)
}

// CatalogList renders the card list without the surrounding document.
func CatalogList(datasets []*domain.Dataset) g.Node {
	if len(datasets) == 0 {
		return h.P(h.Class("empty"), g.Text("No datasets available."))
	}

	items := make([]g.Node, 0, len(datasets))
	for _, d := range datasets {
		items = append(items, h.Li(components.DatasetCard(CardProps(d))))
	}
	return h.Ul(h.Class("dataset-list"), g.Group(items))
}

// CardProps maps a catalog entry onto dataset card props.
func CardProps(d *domain.Dataset) components.DatasetCardProps {
	props := components.DatasetCardProps{
		IconURL:     d.IconURL,
		Name:        d.Name,
		Description: d.Description,
	}
	if d.Featured {
		props.ClassName = FeaturedClass
	}
	return props
}
