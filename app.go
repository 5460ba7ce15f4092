// Package ourassets hosts templ pages on Echo with per-request asset
// collection. Pages declare stylesheets, critical CSS and module scripts
// with the assets package wherever they are rendered, and a single render
// point emits the aggregated markup.
//
// Users provide their own components via WithPage and ViewFuncs;
// ourassets wires the request store, the static root and the middleware.
package ourassets

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/ourassets/assets"
	"github.com/eringen/ourassets/views"
)

// ViewFuncs holds user-provided error pages. Nil fields fall back to the
// bundled views.
type ViewFuncs struct {
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

type page struct {
	path string
	view func(c echo.Context) templ.Component
}

// App is the central ourassets application. It wires together the asset
// expander, middleware, static files and user-provided pages.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Assets *assets.Expander
	Files  *assets.FileCache // nil unless Config.FileCacheTTL > 0
	Views  ViewFuncs

	pages        []page
	customRoutes []func(*App)
	staticFS     fs.FS
	ready        bool
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	a.setDefaultViews()

	return a
}

func (a *App) setDefaultViews() {
	if a.Views.NotFound == nil {
		a.Views.NotFound = func() templ.Component { return views.NotFound(a.Config.Name) }
	}
	if a.Views.ServerError == nil {
		a.Views.ServerError = func() templ.Component { return views.ServerError(a.Config.Name) }
	}
}

// Setup builds the asset expander and installs middleware and routes. It
// runs once; Start calls it, and tests call it before ServeHTTP.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}

	if a.Config.Debug {
		a.Echo.Logger.SetLevel(log.DEBUG)
	}

	files := a.staticFS
	if files == nil {
		info, err := os.Stat(a.Config.StaticDir)
		if err != nil {
			return fmt.Errorf("ourassets: static dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("ourassets: static dir %s is not a directory", a.Config.StaticDir)
		}
		files = os.DirFS(a.Config.StaticDir)
	}
	if a.Config.FileCacheTTL > 0 {
		a.Files = assets.NewFileCache(files, a.Config.FileCacheTTL)
		files = a.Files
	}
	a.Assets = assets.NewExpander(assets.Config{StaticRoot: a.Config.StaticDir},
		assets.WithFS(files),
		assets.WithLogger(a.Echo.Logger),
	)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start sets the app up and starts the server.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	for _, p := range a.pages {
		e.GET(p.path, a.handlePage(p.view))
	}

	e.Static(a.Config.StaticPrefix, a.Config.StaticDir)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Files != nil {
		a.Files.Invalidate()
	}
	return a.Echo.Close()
}
