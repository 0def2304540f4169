package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/indicdlp/snipview/internal/annotation"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var cfgPath string
	var root string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect <language> <region> <stem>",
		Short: "Inspect one sample's parsed annotations",
		Long: `Parse the annotation sidecar for a single sample and print its
category map plus each annotation's resolved label and text.

Useful for checking annotation quality without starting the viewer.`,
		Example: `  # Print the annotations for sample a0001
  snipview inspect hi north a0001

  # Page through annotations one at a time
  snipview inspect hi north a0001 --interactive`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, root)
			if err != nil {
				return err
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			path := filepath.Join(cfg.Root, args[0], args[1], "jsons", args[2]+".json")
			return executeInspect(ctx, path, interactive)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default snipview.yaml if present)")
	cmd.Flags().StringVar(&root, "root", "", "Catalog root directory (overrides config)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Pause after each annotation (press Enter to continue)")

	return cmd
}

func executeInspect(ctx context.Context, path string, interactive bool) error {
	cats, records, err := annotation.Parse(path)
	if err != nil {
		return err
	}

	fmt.Printf("Parsed %s\n", path)
	fmt.Println(strings.Repeat("=", 80))

	if len(cats) > 0 {
		ids := make([]int, 0, len(cats))
		for id := range cats {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		fmt.Println("Categories:")
		for _, id := range ids {
			fmt.Printf("  %d: %s\n", id, cats[id])
		}
		fmt.Println()
	}

	if len(records) == 0 {
		fmt.Println("No annotations.")
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	for i, record := range records {
		select {
		case <-ctx.Done():
			fmt.Println("\nInspection interrupted.")
			return nil
		default:
		}

		fmt.Printf("ANNOTATION %d/%d\n", i+1, len(records))
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("Category:       %s\n", cats.Label(record.Category()))
		text := strings.TrimSpace(record.Text)
		if text == "" {
			fmt.Println("No text found for this annotation.")
		} else {
			fmt.Println(text)
		}
		fmt.Println()

		if interactive && i < len(records)-1 {
			fmt.Print("Press Enter for next annotation...")
			if _, err := reader.ReadString('\n'); err != nil {
				return nil
			}
		}
	}

	return nil
}
