package cmd

import (
	"fmt"

	"github.com/indicdlp/snipview/internal/catalog"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var cfgPath string
	var root string

	cmd := &cobra.Command{
		Use:   "list [language [region]]",
		Short: "List languages, regions, or sample pairs",
		Long: `List the contents of the catalog at increasing depth.

With no arguments the available languages are printed; with a language,
its regions; with a language and region, the paired samples in that
region. Images without a matching annotation sidecar are not listed.`,
		Example: `  # Languages in the default catalog
  snipview list

  # Regions for one language
  snipview list hi

  # Sample pairs for a selection
  snipview list hi north --root /data/vis-samples`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, root)
			if err != nil {
				return err
			}

			switch len(args) {
			case 0:
				languages, err := catalog.ListLanguages(cfg.Root)
				if err != nil {
					return fmt.Errorf("failed to list languages: %w", err)
				}
				if len(languages) == 0 {
					fmt.Printf("No languages found under %s\n", cfg.Root)
					return nil
				}
				for _, language := range languages {
					fmt.Println(language)
				}
			case 1:
				regions, err := catalog.ListRegions(cfg.Root, args[0])
				if err != nil {
					return fmt.Errorf("failed to list regions: %w", err)
				}
				if len(regions) == 0 {
					fmt.Printf("No regions found under %s/%s\n", cfg.Root, args[0])
					return nil
				}
				for _, region := range regions {
					fmt.Println(region)
				}
			case 2:
				pairs, err := catalog.LoadPairs(cfg.Root, args[0], args[1], cfg.Extensions)
				if err != nil {
					return fmt.Errorf("failed to load pairs: %w", err)
				}
				fmt.Printf("Found %d samples in %s/%s\n", len(pairs), args[0], args[1])
				for _, pair := range pairs {
					fmt.Printf("%s\t%s\t%s\n", pair.Stem(), pair.ImagePath, pair.AnnotationPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default snipview.yaml if present)")
	cmd.Flags().StringVar(&root, "root", "", "Catalog root directory (overrides config)")

	return cmd
}
