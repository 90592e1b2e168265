package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-promptcat/pkg/renderers/tui"
)

func newBrowseCommand(app *App) *cobra.Command {
	var (
		values   map[string]string
		platform string
		fuzzy    bool
	)
	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Pick, fill, and export a prompt interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := app.request()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				req.Query = args[0]
			}
			req.Fuzzy = fuzzy
			req.Renderer = "tui"
			req.RenderOptions = app.renderOptions(values, platform)

			out, err := app.orch.Generate(cmd.Context(), req)
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			_, err = app.Out.Write(out)
			return err
		},
	}
	cmd.Flags().StringToStringVar(&values, "set", nil, "prefill a variable, e.g. --set city=Lima")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "chat service for the open action")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "rank acts by fuzzy match")
	return cmd
}
