package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
	"github.com/goliatone/go-promptcat/pkg/renderers/text"
	"github.com/goliatone/go-promptcat/pkg/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	emphasisStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

func newListCommand(app *App) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts visible to the current audience",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := app.request()
			if err != nil {
				return err
			}
			req.Query = query
			view, err := app.orch.View(cmd.Context(), req)
			if err != nil {
				return err
			}
			printView(app.Out, view)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "keep prompts whose act or text contains this")
	return cmd
}

func newSearchCommand(app *App) *cobra.Command {
	var fuzzy bool
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search prompts by act or text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := app.request()
			if err != nil {
				return err
			}
			req.Query = args[0]
			req.Fuzzy = fuzzy
			view, err := app.orch.View(cmd.Context(), req)
			if err != nil {
				return err
			}
			printView(app.Out, view)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "rank acts by fuzzy match instead of substring")
	return cmd
}

func printView(out io.Writer, view model.CatalogView) {
	fmt.Fprintln(out, titleStyle.Render(view.Label))
	for _, form := range view.Forms {
		line := form.Title
		if form.ForDevelopers {
			line += " " + mutedStyle.Render("[dev]")
		}
		if n := len(form.Fields); n > 0 {
			line += " " + mutedStyle.Render(fmt.Sprintf("(%d variables)", n))
		}
		fmt.Fprintln(out, line)
	}
}

func newShowCommand(app *App) *cobra.Command {
	var values map[string]string
	cmd := &cobra.Command{
		Use:   "show <act>",
		Short: "Show a prompt's variables, preview, and finalized text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := app.form(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			sess := session.Open(form)
			defer sess.Close()
			for name, value := range values {
				sess.Set(name, value)
			}

			out := app.Out
			fmt.Fprintln(out, titleStyle.Render(form.Title))
			if form.HasVariables() {
				fmt.Fprintln(out)
				for _, field := range form.Fields {
					def := field.Default
					if def == "" {
						def = mutedStyle.Render("(none)")
					}
					fmt.Fprintf(out, "  %s = %s\n", field.Name, def)
				}
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, sess.Preview(render.WithEmphasis(func(v string) string {
				return emphasisStyle.Render(v)
			})))
			fmt.Fprintln(out)
			fmt.Fprintln(out, mutedStyle.Render("Final:"))
			fmt.Fprintln(out, sess.Final(app.prefs.Directives()))
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&values, "set", nil, "bind a variable, e.g. --set city=Lima")
	return cmd
}

func newRenderCommand(app *App) *cobra.Command {
	var (
		values map[string]string
		query  string
		links  bool
	)
	cmd := &cobra.Command{
		Use:   "render [act]",
		Short: "Print finalized prompt text",
		Long:  "Print the finalized text of one prompt, or of every prompt matching --query.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := app.request()
			if err != nil {
				return err
			}
			req.Query = query
			if len(args) == 1 {
				req.Act = strings.TrimSpace(args[0])
			}
			view, err := app.orch.View(cmd.Context(), req)
			if err != nil {
				return err
			}
			out, err := text.New(text.WithLinks(links)).Render(cmd.Context(), view, app.renderOptions(values, ""))
			if err != nil {
				return err
			}
			_, err = app.Out.Write(out)
			return err
		},
	}
	cmd.Flags().StringToStringVar(&values, "set", nil, "bind a variable, e.g. --set city=Lima")
	cmd.Flags().StringVarP(&query, "query", "q", "", "render every prompt matching this")
	cmd.Flags().BoolVar(&links, "links", false, "append the chat link after each prompt")
	return cmd
}
