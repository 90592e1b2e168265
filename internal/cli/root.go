package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Execute runs the command tree against the process arguments.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := NewRootCommand(&App{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the promptcat command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "promptcat",
		Short: "Browse, fill, and export chat prompts",
		Long: `promptcat browses a catalog of chat prompts, fills their ${name:default}
variables, and copies the finalized text or opens it in a chat service.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&app.flags.source, "source", "", "catalog path or URL (CSV, YAML, JSON); bundled samples when empty")
	flags.StringVar(&app.flags.audience, "audience", "", "everyone or developers; overrides the saved preference")
	flags.StringVar(&app.flags.prefs, "prefs", "", "preferences file (default $XDG_CONFIG_HOME/promptcat/prefs.yaml)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging")
	flags.DurationVar(&app.flags.timeout, "timeout", 10*time.Second, "timeout for remote catalogs")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := app.setup(); err != nil {
			return err
		}
		cmd.SetOut(app.Out)
		cmd.SetErr(app.Err)
		return app.loadPrefs(cmd.Context())
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		app.sync()
	}

	root.AddCommand(
		newListCommand(app),
		newSearchCommand(app),
		newShowCommand(app),
		newRenderCommand(app),
		newCopyCommand(app),
		newOpenCommand(app),
		newBrowseCommand(app),
		newSiteCommand(app),
		newOpenAPICommand(app),
		newPrefsCommand(app),
	)
	return root
}
