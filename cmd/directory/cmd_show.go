package main

import (
	"github.com/spf13/cobra"

	"github.com/Raymond9734/profile-directory/internal/controller"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one profile's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		view, err := controller.NewDetails(a.ProfileSvc).Load(ctx, args[0])
		if err != nil {
			return err
		}
		printDetails(cmd.OutOrStdout(), view)
		return nil
	},
}
