package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Raymond9734/profile-directory/internal/controller"
)

var (
	listSearch   string
	listLocation string
	listPage     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles, filtered and paginated",
	Long:  "List one page of the directory. --search matches name, description and role; --location takes a \"City, State\" option from the locations command.",
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
		home.Search(listSearch)
		home.FilterLocation(listLocation)
		if listPage > 1 && !home.GoToPage(listPage) {
			fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render(fmt.Sprintf("Page %d is out of range, showing page 1", listPage)))
		}

		printView(cmd.OutOrStdout(), home.View())
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search text")
	listCmd.Flags().StringVarP(&listLocation, "location", "l", "", "Location filter (\"City, State\" or \"all\")")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number")
}
