package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Raymond9734/profile-directory/internal/controller"
)

var mapFocus int64

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the map markers and camera",
	Long:  "Show every profile as a map marker. --focus flies the camera to one profile the way \"Show on Map\" does.",
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
		if mapFocus != 0 {
			if err := home.ShowOnMap(mapFocus); err != nil {
				return fmt.Errorf("profile %d: %w", mapFocus, err)
			}
		}

		printMap(cmd.OutOrStdout(), home.Map(a.Tiles), home.Selected())
		return nil
	},
}

func init() {
	mapCmd.Flags().Int64Var(&mapFocus, "focus", 0, "Profile id to center the map on")
}
