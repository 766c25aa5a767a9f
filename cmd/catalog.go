package main

import (
	"fmt"

	"github.com/Dosada05/legacy-golf/repositories"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the tournament catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog file without starting the server",
	Long: `Loads the catalog the same way the server does and reports the first problem found.
Without --file the embedded catalog is checked.`,
	Args: cobra.NoArgs,
	RunE: runCatalogValidate,
}

func init() {
	catalogValidateCmd.Flags().String("file", "", "path to catalog YAML (default: embedded catalog)")
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogValidate(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	catalog, err := repositories.LoadCatalogFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "catalog %s is valid: %d tournaments, %d testimonials\n",
		catalogSource(path), len(catalog.Tournaments), len(catalog.Testimonials))
	return nil
}
