package main

import (
	"context"
	"fmt"

	"fscoreportfolio/cmd"
	"fscoreportfolio/internal/app"

	"github.com/spf13/cobra"
)

var universeFile string

var refreshCmd = &cobra.Command{
	Use:   "refresh [symbols...]",
	Short: "Fetch stale meta, fundamentals and prices, then rescore",
	Long: `Refreshes the given symbols, the symbols listed in --universe, or every
known security when neither is given.`,
	RunE: runRefresh,
}

var scoreCmd = &cobra.Command{
	Use:   "score [symbols...]",
	Short: "Recompute financial-health scores from stored fundamentals",
	RunE: func(c *cobra.Command, args []string) error {
		return withDependencies(c.Context(), func(ctx context.Context, deps *cmd.Dependencies) error {
			written, err := deps.RefreshHandler.Rescore(ctx, args)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d scores\n", written)
			return nil
		})
	},
}

func init() {
	refreshCmd.Flags().StringVar(&universeFile, "universe", "", "CSV file with a symbol column")
}

func runRefresh(c *cobra.Command, args []string) error {
	symbols := args
	if universeFile != "" {
		fromFile, err := loadUniverse(universeFile)
		if err != nil {
			return err
		}
		symbols = append(symbols, fromFile...)
	}

	return withDependencies(c.Context(), func(ctx context.Context, deps *cmd.Dependencies) error {
		result, err := deps.RefreshHandler.Refresh(ctx, app.RefreshInput{Symbols: symbols})
		if result != nil {
			printRefresh(result)
		}
		return err
	})
}

func printRefresh(result *app.RefreshResult) {
	for category, n := range result.Inserted {
		fmt.Printf("%-13s %d new rows\n", category, n)
	}
	for _, f := range result.Failed {
		fmt.Printf("failed        %s\n", f.Error())
	}
	if len(result.Removed) > 0 {
		fmt.Printf("removed       %v\n", result.Removed)
	}
	fmt.Printf("scores        %d\n", result.ScoresWritten)
}
