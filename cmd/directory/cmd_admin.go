package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Raymond9734/profile-directory/internal/admin"
	"github.com/Raymond9734/profile-directory/internal/app"
)

var deleteYes bool

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Add, edit and delete profiles",
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every profile with its id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPanel(cmd, func(ctx context.Context, panel *admin.Panel) error {
			out := cmd.OutOrStdout()
			for _, p := range panel.Profiles() {
				fmt.Fprintf(out, "%s  %s  %s  %s\n",
					mutedStyle.Render(fmt.Sprintf("%4d", p.ID)), nameStyle.Render(p.Name), p.Title, mutedStyle.Render(p.CityState()))
			}
			return nil
		})
	},
}

var adminAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPanel(cmd, func(ctx context.Context, panel *admin.Panel) error {
			if err := panel.StartCreate(); err != nil {
				return err
			}
			return editProfile(cmd.ErrOrStderr(), panel, func() error {
				_, err := panel.Submit(ctx)
				return err
			})
		})
	},
}

var adminEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withPanel(cmd, func(ctx context.Context, panel *admin.Panel) error {
			if err := panel.StartEdit(id); err != nil {
				return err
			}
			return editProfile(cmd.ErrOrStderr(), panel, func() error {
				_, err := panel.Submit(ctx)
				return err
			})
		})
	},
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withPanel(cmd, func(ctx context.Context, panel *admin.Panel) error {
			if !deleteYes {
				confirmed := false
				err := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete profile %d?", id)).
						Affirmative("Delete").
						Negative("Cancel").
						Value(&confirmed),
				)).Run()
				proceed, err := confirmOutcome(cmd.OutOrStdout(), confirmed, err)
				if !proceed {
					return err
				}
			}
			return panel.Delete(ctx, id)
		})
	},
}

func init() {
	adminDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminAddCmd)
	adminCmd.AddCommand(adminEditCmd)
	adminCmd.AddCommand(adminDeleteCmd)
}

// withPanel opens an admin panel on the configured source and runs fn with it
func withPanel(cmd *cobra.Command, fn func(ctx context.Context, panel *admin.Panel) error) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	panel := newPanel(a, cmd)
	if err := panel.Open(ctx); err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}
	defer panel.Close()
	return fn(ctx, panel)
}

func newPanel(a *app.App, cmd *cobra.Command) *admin.Panel {
	return admin.NewPanel(a.ProfileSvc, terminalNotifier(cmd.OutOrStdout()), a.Logger)
}

// confirmOutcome turns the confirm prompt's result into whether to go ahead.
// A declined or aborted prompt prints a cancellation; a prompt that could not
// run at all is an error.
func confirmOutcome(w io.Writer, confirmed bool, err error) (bool, error) {
	switch {
	case errors.Is(err, huh.ErrUserAborted):
		fmt.Fprintln(w, mutedStyle.Render("Delete cancelled"))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to confirm delete (use --yes to skip the prompt): %w", err)
	case !confirmed:
		fmt.Fprintln(w, mutedStyle.Render("Delete cancelled"))
		return false, nil
	}
	return true, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid profile id %q", raw)
	}
	return id, nil
}
