package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-promptcat/pkg/prefs"
)

func newPrefsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, key := range prefs.Keys() {
				value, err := app.prefs.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "%s: %s\n", key, value)
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			value, err := app.prefs.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.prefs
			if err := p.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := app.Store.Save(cmd.Context(), p); err != nil {
				return err
			}
			app.prefs = p
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.prefs = prefs.Default()
			return app.Store.Save(cmd.Context(), app.prefs)
		},
	}

	cmd.AddCommand(get, set, reset)
	return cmd
}
