package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linksight/internal/catalog"
	"linksight/internal/domain"
	"linksight/internal/matcher"
)

func newPreviewCmd(v *viper.Viper) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:     "preview <file.csv>",
		Short:   "Validate a CSV file and show its first rows",
		Example: `  linksight preview data/addresses.csv --rows 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 1 || rows > catalog.MaxPreviewRows {
				return domain.New(domain.CodeUploadPreviewRows,
					fmt.Sprintf("rows must be from 1 to %d", catalog.MaxPreviewRows)).
					WithField("rows").
					WithDetail("value", rows)
			}

			table, err := catalog.ReadCSVFile(args[0])
			if err != nil {
				return err
			}

			return RenderPreview(cmd.OutOrStdout(), table.Preview(rows), v.GetString("output"))
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", catalog.DefaultPreviewRows, "number of rows to show")

	return cmd
}

func newMatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <file.csv>",
		Short: "Match the addresses in a CSV file to reference location codes",
		Long: `match reads a CSV file with province, city_municipality and barangay
columns and lists the reference locations each row matches, with a score
from 0 to 100.`,
		Example: `  linksight match data/addresses.csv --reference data/psgc_reference.csv -o json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := matcher.LoadReferenceFile(v.GetString("reference"))
			if err != nil {
				return err
			}

			table, err := catalog.ReadCSVFile(args[0])
			if err != nil {
				return err
			}

			matches, err := matcher.New(reference, matcher.DefaultInterlevels).MatchTable(table)
			if err != nil {
				return err
			}

			return RenderMatches(cmd.OutOrStdout(), matches, v.GetString("output"))
		},
	}

	cmd.Flags().String("reference", "data/psgc_reference.csv", "reference locations CSV")
	_ = v.BindPFlag("reference", cmd.Flags().Lookup("reference"))

	return cmd
}
