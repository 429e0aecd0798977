package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Raymond9734/profile-directory/internal/controller"
	"github.com/Raymond9734/profile-directory/internal/directory"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the location filter options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		home := controller.NewHome(a.ProfileSvc, nil, a.Logger)
		if err := home.Load(ctx); err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, directory.AllLocations)
		for _, loc := range home.Locations() {
			fmt.Fprintln(out, loc)
		}
		return nil
	},
}
