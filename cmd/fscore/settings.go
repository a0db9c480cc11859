package main

import (
	"context"
	"errors"
	"fmt"

	"fscoreportfolio/cmd"
	"fscoreportfolio/internal/domain"
	"fscoreportfolio/internal/repository"
	"fscoreportfolio/internal/util"

	"github.com/spf13/cobra"
)

var forceInit bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the stored data settings",
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default data settings",
	RunE: func(c *cobra.Command, args []string) error {
		return withDependencies(c.Context(), func(ctx context.Context, deps *cmd.Dependencies) error {
			existing, err := deps.DataSettingsRepository.Get(nil)
			if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
				return err
			}
			if existing != nil && !forceInit {
				return fmt.Errorf("data settings already exist, pass --force to overwrite")
			}
			saved, err := deps.DataSettingsRepository.Upsert(nil, domain.DefaultDataSettings())
			if err != nil {
				return err
			}
			util.Pprint(saved)
			return nil
		})
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored data settings",
	RunE: func(c *cobra.Command, args []string) error {
		return withDependencies(c.Context(), func(ctx context.Context, deps *cmd.Dependencies) error {
			settings, err := deps.DataSettingsRepository.Get(nil)
			if err != nil {
				return err
			}
			util.Pprint(settings)
			return nil
		})
	},
}

func init() {
	settingsInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite existing settings")
	settingsCmd.AddCommand(settingsInitCmd, settingsShowCmd)
}
