package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
)

type catalogOptions struct {
	yamlOutput bool
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the slides, languages and navigation compiled into vitrine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return newCommandError("print catalog", "loading the catalog", err, "The embedded catalog is broken; rebuild vitrine.")
			}
			if opts.yamlOutput {
				return renderCatalogYAML(cmd, cat)
			}
			return renderCatalogTable(cmd, cat)
		},
	}

	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output the catalog document as YAML")

	return cmd
}

func renderCatalogTable(cmd *cobra.Command, cat *catalog.Catalog) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Autoplay interval: %s\nScroll threshold: %d\n\n", cat.AutoplayInterval, cat.ScrollThreshold)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "SLIDE\tCATEGORY\tTITLE\tGRADIENT")
	for _, slide := range cat.Slides {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", slide.ID, slide.Category, slide.Title, slide.ColorGradient)
	}

	fmt.Fprintln(writer, "\t\t\t")
	fmt.Fprintln(writer, "LANGUAGE\tNAME\tFLAG\t")
	for _, lang := range cat.Languages {
		fmt.Fprintf(writer, "%s\t%s\t%s\t\n", lang.Code, lang.DisplayName, lang.FlagGlyph)
	}

	fmt.Fprintln(writer, "\t\t\t")
	fmt.Fprintln(writer, "PATH\tLABEL\tGROUP\t")
	for _, link := range cat.Navigation {
		fmt.Fprintf(writer, "%s\t%s\t%s\t\n", link.Path, link.Label, link.Group)
	}

	return writer.Flush()
}

func renderCatalogYAML(cmd *cobra.Command, cat *catalog.Catalog) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(cat); err != nil {
		return err
	}
	return encoder.Close()
}
