package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-promptcat/pkg/model"
)

func newSiteCommand(app *App) *cobra.Command {
	var (
		output  string
		query   string
		title   string
		variant string
		labels  map[string]string
	)
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Render the catalog as a static HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := app.request()
			if err != nil {
				return err
			}
			req.Query = query
			req.Title = title
			req.Renderer = "vanilla"
			req.ThemeVariant = variant
			if req.ThemeVariant == "" {
				req.ThemeVariant = app.prefs.Theme()
			}
			req.RenderOptions = app.renderOptions(nil, "")
			if len(labels) > 0 {
				req.Decorators = append(req.Decorators, model.FieldLabels(labels))
			}

			html, err := app.orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = app.Out.Write(html)
				return err
			}
			if err := os.WriteFile(output, html, 0o644); err != nil {
				return fmt.Errorf("promptcat: write site: %w", err)
			}
			fmt.Fprintf(app.Out, "Site written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "keep prompts whose act or text contains this")
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().StringToStringVar(&labels, "label", nil, "relabel a variable input, e.g. --label city=\"Your city\"")
	cmd.Flags().StringVar(&variant, "theme", "", "light or dark; defaults to the saved dark-mode preference")
	return cmd
}
