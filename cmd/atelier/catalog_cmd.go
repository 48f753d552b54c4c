package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/depeter/atelier/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect catalog files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Parse and validate a catalog; the built-in one when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			cat, err := loadCatalog(path)
			if err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), catalogName(path), cat)
			return nil
		},
	})
	return cmd
}

func printCounts(out io.Writer, name string, cat *catalog.Catalog) {
	fmt.Fprintf(out, "%s: ok\n", name)
	fmt.Fprintf(out, "  looks    %d\n", len(cat.Looks))
	fmt.Fprintf(out, "  bespoke  %d\n", len(cat.Bespoke))
	fmt.Fprintf(out, "  latest   %d\n", len(cat.Latest))
	fmt.Fprintf(out, "  archive  %d\n", len(cat.Archive))
	fmt.Fprintf(out, "  images   %d\n", len(cat.Images()))
}
