// Package cli implements the promptcat command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	promptcat "github.com/goliatone/go-promptcat"
	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/chat"
	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/orchestrator"
	"github.com/goliatone/go-promptcat/pkg/prefs"
	"github.com/goliatone/go-promptcat/pkg/render"
	"github.com/goliatone/go-promptcat/pkg/renderers/tui"
)

// App holds the collaborators commands share. Zero fields are filled in by
// PersistentPreRunE.
type App struct {
	Out      io.Writer
	Err      io.Writer
	Logger   *zap.Logger
	Store    prefs.Store
	Exporter *chat.Exporter
	Driver   tui.PromptDriver

	flags globalFlags
	prefs prefs.Preferences
	orch  *orchestrator.Orchestrator
}

type globalFlags struct {
	source   string
	audience string
	prefs    string
	verbose  bool
	timeout  time.Duration
}

func (a *App) setup() error {
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.Err == nil {
		a.Err = os.Stderr
	}
	if a.Logger == nil {
		logger, err := newLogger(a.flags.verbose)
		if err != nil {
			return fmt.Errorf("promptcat: logger: %w", err)
		}
		a.Logger = logger
	}
	if a.Store == nil {
		path := a.flags.prefs
		if path == "" {
			var err error
			if path, err = prefs.DefaultPath(); err != nil {
				return err
			}
		}
		a.Store = prefs.NewFileStore(path, prefs.WithLogger(a.Logger))
	}
	if a.Exporter == nil {
		a.Exporter = chat.NewExporter(chat.WithLogger(a.Logger))
	}

	registryOptions := []tui.Option{tui.WithExporter(a.Exporter), tui.WithLogger(a.Logger), tui.WithOutput(a.Out)}
	if a.Driver != nil {
		registryOptions = append(registryOptions, tui.WithPromptDriver(a.Driver))
	}
	registry, err := promptcat.NewRegistry(registryOptions...)
	if err != nil {
		return err
	}

	loader := promptcat.NewLoaderWithLogger(a.Logger, catalog.WithHTTPFallback(a.flags.timeout))
	a.orch = orchestrator.New(
		orchestrator.WithLoader(loader),
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(a.Logger),
	)
	return nil
}

func (a *App) loadPrefs(ctx context.Context) error {
	p, err := a.Store.Load(ctx)
	if err != nil {
		return err
	}
	a.prefs = p
	return nil
}

func (a *App) sync() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// request seeds an orchestrator request with the catalog source and the
// audience from flags or saved preferences.
func (a *App) request() (orchestrator.Request, error) {
	req := orchestrator.Request{Audience: a.audience()}
	if src := strings.TrimSpace(a.flags.source); src != "" {
		source, err := catalog.ParseSource(src)
		if err != nil {
			return orchestrator.Request{}, fmt.Errorf("promptcat: --source: %w", err)
		}
		req.Source = source
	} else {
		doc := promptcat.SampleDocument()
		req.Document = &doc
	}
	return req, nil
}

func (a *App) audience() catalog.Audience {
	if a.flags.audience != "" {
		return catalog.ParseAudience(a.flags.audience)
	}
	return catalog.ParseAudience(a.prefs.Audience)
}

func (a *App) renderOptions(values map[string]string, platform string) render.RenderOptions {
	if platform == "" {
		platform = a.prefs.Platform
	}
	var bindings render.Bindings
	if len(values) > 0 {
		bindings = render.Bindings(values)
	}
	return render.RenderOptions{
		Values:     bindings,
		Directives: a.prefs.Directives(),
		Platform:   platform,
	}
}

func (a *App) form(ctx context.Context, act string) (model.FormModel, error) {
	req, err := a.request()
	if err != nil {
		return model.FormModel{}, err
	}
	req.Act = act
	view, err := a.orch.View(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}
	return view.Forms[0], nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
