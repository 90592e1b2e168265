package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-promptcat/pkg/chat"
	"github.com/goliatone/go-promptcat/pkg/render"
)

func newCopyCommand(app *App) *cobra.Command {
	var values map[string]string
	cmd := &cobra.Command{
		Use:   "copy <act>",
		Short: "Copy a finalized prompt to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := app.form(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			options := app.renderOptions(values, "")
			final := render.Final(form.Prompt, options.Values, options.Directives)

			if err := app.Exporter.Copy(cmd.Context(), final); err != nil {
				if errors.Is(err, chat.ErrUnsupportedClipboard) {
					fmt.Fprintln(app.Err, "clipboard unavailable; printing instead")
					fmt.Fprintln(app.Out, final)
					return nil
				}
				return err
			}
			fmt.Fprintf(app.Out, "Copied %q to the clipboard.\n", form.Title)
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&values, "set", nil, "bind a variable, e.g. --set city=Lima")
	return cmd
}

func newOpenCommand(app *App) *cobra.Command {
	var (
		values   map[string]string
		platform string
		printURL bool
	)
	cmd := &cobra.Command{
		Use:   "open <act>",
		Short: "Open a finalized prompt in a chat service",
		Long:  "Open a finalized prompt in a chat service. Platforms: " + platformNames() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := app.form(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			options := app.renderOptions(values, platform)
			final := render.Final(form.Prompt, options.Values, options.Directives)

			if printURL {
				link, err := app.Exporter.URL(options.Platform, final)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, link)
				return nil
			}

			link, err := app.Exporter.Open(cmd.Context(), options.Platform, final)
			if err != nil {
				if link == "" {
					return err
				}
				app.Logger.Warn("falling back to printing the link", zap.Error(err))
				fmt.Fprintln(app.Out, link)
				return nil
			}
			fmt.Fprintf(app.Out, "Opened %s\n", link)
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&values, "set", nil, "bind a variable, e.g. --set city=Lima")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "chat service; defaults to the saved preference")
	cmd.Flags().BoolVar(&printURL, "print", false, "print the link instead of opening a browser")
	return cmd
}

func platformNames() string {
	platforms := chat.Platforms()
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
