// web/components/dataset_card.go - Dataset card component
package components

import (
	"net/url"
	"regexp"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"linksight/internal/domain"
	"linksight/web/styles"
)

var classTokenPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// DatasetCardProps is the view model for a single dataset card.
// IconURL, Name and Description are always rendered, even when empty.
// ClassName is an optional extra scoping class for the root element.
type DatasetCardProps struct {
	IconURL     string
	Name        string
	Description string
	ClassName   string
}

// NewDatasetCardProps builds validated card props.
func NewDatasetCardProps(iconURL, name, description, className string) (DatasetCardProps, error) {
	props := DatasetCardProps{
		IconURL:     iconURL,
		Name:        name,
		Description: description,
		ClassName:   className,
	}
	if err := props.Validate(); err != nil {
		return DatasetCardProps{}, err
	}
	return props, nil
}

// Validate checks that the icon is a URL reference and that ClassName is a
// single class token. Reachability of the icon is not checked.
func (p DatasetCardProps) Validate() error {
	if _, err := url.Parse(p.IconURL); err != nil {
		return domain.New(domain.CodeCardIconURL, "Icon URL is not a valid URL reference").
			WithField("icon_url").
			WithCause(err)
	}
	if p.ClassName != "" && !classTokenPattern.MatchString(p.ClassName) {
		return domain.New(domain.CodeCardClassName, "Class name must be a single CSS class token").
			WithField("class_name").
			WithDetail("value", p.ClassName)
	}
	return nil
}

// ActionLabels are the action links shown under every dataset description.
var ActionLabels = []string{"About", "Preview", "Download"}

// DatasetCard renders a dataset as a horizontal row: icon, info and toggle.
// It never fails; missing values render as empty text or an empty source.
func DatasetCard(props DatasetCardProps) g.Node {
	classes := "dataset-card " + styles.DatasetCardSheet.ClassName()
	if props.ClassName != "" {
		classes += " " + props.ClassName
	}

	return h.Div(
		h.Class(classes),

		// Icon
		h.Div(
			h.Class(styles.RegionIcon),
			h.Img(h.Src(props.IconURL), h.Alt("")),
		),

		// Name, description and actions
		h.Div(
			h.Class(styles.RegionInfo),
			h.H3(h.Class("name"), g.Text(props.Name)),
			h.P(h.Class("description -small"), g.Text(props.Description)),
			DatasetActions(),
		),

		h.Div(
			h.Class(styles.RegionToggle),
			Toggle(ToggleProps{Icons: false}),
		),
	)
}

// DatasetActions renders the inert action links separated by bullets.
func DatasetActions() g.Node {
	children := make([]g.Node, 0, len(ActionLabels)*2)
	for i, label := range ActionLabels {
		if i > 0 {
			children = append(children, h.Span(h.Class("separator"), g.Text("•")))
		}
		children = append(children, h.A(h.Href("#"), g.Text(label)))
	}

	return h.Div(
		h.Class(styles.RegionActions+" -small"),
		g.Group(children),
	)
}
