package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/openapi"
)

func newOpenAPICommand(app *App) *cobra.Command {
	var (
		output string
		format string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Describe the catalog as an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			req, err := app.request()
			if err != nil {
				return err
			}
			records, err := app.orch.Records(ctx, req)
			if err != nil {
				return err
			}
			records = catalog.New(records).FilterAudience(app.audience()).Records()

			doc, err := openapi.Describe(ctx, records, openapi.Info{Title: title})
			if err != nil {
				return err
			}
			raw, err := openapi.Marshal(doc, openapi.Format(format))
			if err != nil {
				return err
			}
			if output == "" {
				_, err = app.Out.Write(raw)
				return err
			}
			if err := os.WriteFile(output, raw, 0o644); err != nil {
				return fmt.Errorf("promptcat: write openapi: %w", err)
			}
			fmt.Fprintf(app.Out, "OpenAPI document written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "json or yaml")
	cmd.Flags().StringVar(&title, "title", "", "document title")
	return cmd
}
