package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"linksight/web/components"
	"linksight/web/styles"
)

func newRenderCardCmd() *cobra.Command {
	var (
		iconURL     string
		name        string
		description string
		className   string
		standalone  bool
	)

	cmd := &cobra.Command{
		Use:   "render-card",
		Short: "Render a dataset card as HTML",
		Example: `  linksight render-card --icon /img/a.png --name "Census 2020" --description "Population data"
  linksight render-card --name PSGC --class featured --standalone > card.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			props, err := components.NewDatasetCardProps(iconURL, name, description, className)
			if err != nil {
				return err
			}

			var node g.Node = components.DatasetCard(props)
			if standalone {
				node = standaloneDocument(node)
			}

			out, err := components.Render(node)
			if err != nil {
				return fmt.Errorf("failed to render card: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&iconURL, "icon", "", "icon image URL")
	cmd.Flags().StringVar(&name, "name", "", "dataset name")
	cmd.Flags().StringVar(&description, "description", "", "dataset description")
	cmd.Flags().StringVar(&className, "class", "", "extra class on the card root")
	cmd.Flags().BoolVar(&standalone, "standalone", false, "wrap the card in an HTML document with inline styles")

	return cmd
}

// standaloneDocument inlines the stylesheet so the output opens on its own.
func standaloneDocument(card g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text("Dataset card")),
				h.StyleEl(g.Raw(styles.Bundle(styles.DatasetCardSheet, styles.ToggleSheet))),
			),
			h.Body(card),
		),
	)
}

func newCSSCmd() *cobra.Command {
	var (
		regions     []string
		listRegions bool
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the component stylesheet",
		Example: `  linksight css > components.css
  linksight css --region icon --region toggle
  linksight css --list-regions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sheets := []styles.Sheet{styles.DatasetCardSheet, styles.ToggleSheet}

			switch {
			case listRegions:
				for _, sheet := range sheets {
					if _, err := fmt.Fprintf(out, "%s: %s\n", sheet.Name, strings.Join(sheet.Regions(), ", ")); err != nil {
						return err
					}
				}
				return nil
			case len(regions) > 0:
				parts := make([]string, 0, len(sheets))
				for _, sheet := range sheets {
					if css := sheet.RegionCSS(regions...); css != "" {
						parts = append(parts, css)
					}
				}
				if len(parts) == 0 {
					return fmt.Errorf("no rules for regions %s", strings.Join(regions, ", "))
				}
				_, err := fmt.Fprint(out, strings.Join(parts, "\n"))
				return err
			default:
				_, err := fmt.Fprint(out, styles.Bundle(sheets...))
				return err
			}
		},
	}

	cmd.Flags().StringSliceVar(&regions, "region", nil, "only print rules for these regions")
	cmd.Flags().BoolVar(&listRegions, "list-regions", false, "list the regions of every sheet")

	return cmd
}
