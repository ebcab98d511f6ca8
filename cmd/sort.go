package cmd

import (
	"fmt"
	"os"

	"profile-exporter/feature/export"

	"github.com/spf13/cobra"
)

var sortOutput string

// sortCmd re-sorts a saved profile file.
var sortCmd = &cobra.Command{
	Use:   "sort <profile.json>",
	Short: "Sort a saved profile like the game does",
	Long: `Applies the canonical ordering to a saved profile: monsters, their runes,
the rune inventory and the craft items. Members the exporter does not know are
kept unchanged. The file is rewritten in place unless --out is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}

		sorted, err := export.SortProfile(data)
		if err != nil {
			return err
		}

		target := sortOutput
		if target == "" {
			target = args[0]
		}
		if err := os.WriteFile(target, sorted, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sorted profile written to %s\n", target)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sortCmd)
	sortCmd.Flags().StringVarP(&sortOutput, "out", "o", "", "Write the sorted profile to this file")
}
