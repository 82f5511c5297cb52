package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linksight/internal/catalog"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the datasets in a catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := catalog.LoadFile(v.GetString("catalog"))
			if err != nil {
				return err
			}

			datasets, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			return RenderDatasets(cmd.OutOrStdout(), datasets, v.GetString("output"))
		},
	}

	cmd.Flags().String("catalog", "data/datasets.yaml", "catalog file")
	_ = v.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))

	return cmd
}
