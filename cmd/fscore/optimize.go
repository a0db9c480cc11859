package main

import (
	"context"
	"fmt"
	"sort"

	"fscoreportfolio/cmd"
	"fscoreportfolio/internal/domain"

	"github.com/spf13/cobra"
)

var backcast bool

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Recompute and store the target portfolio",
	RunE: func(c *cobra.Command, args []string) error {
		return withDependencies(c.Context(), func(ctx context.Context, deps *cmd.Dependencies) error {
			result, err := deps.OptimizeHandler.Optimize(ctx, backcast)
			if err != nil {
				return err
			}

			years := []int{}
			for year := range result.Backcast {
				years = append(years, year)
			}
			sort.Ints(years)
			for _, year := range years {
				b := result.Backcast[year]
				if b.Realized != nil {
					fmt.Printf("backcast %d: return %.2f%% stdev %.2f%% sharpe %.2f\n",
						year, b.Realized.AnnualizedReturn*100, b.Realized.AnnualizedStdev*100, b.Realized.SharpeRatio)
				}
			}
			printPortfolio(result.Portfolio)
			return nil
		})
	},
}

func init() {
	optimizeCmd.Flags().BoolVar(&backcast, "backcast", false, "also allocate and evaluate every earlier year")
}

func printPortfolio(p domain.TargetPortfolio) {
	fmt.Printf("fiscal year %d\n", p.FiscalYear)
	for _, symbol := range p.HeldSymbols() {
		fmt.Printf("%-8s %6d shares  %6.2f%%\n", symbol, p.Shares[symbol], p.Weights[symbol]*100)
	}
	fmt.Printf("leftover cash %s\n", p.LeftoverCash.StringFixed(2))
}
