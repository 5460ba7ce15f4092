package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/eringen/ourassets"
	"github.com/eringen/ourassets/views"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		staticDir string
		cacheTTL  time.Duration
		debug     bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page and the static root",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ourassets.ConfigFromEnv()
			cfg.Addr = addr
			cfg.StaticDir = staticDir
			if cmd.Flags().Changed("cache-ttl") {
				cfg.FileCacheTTL = cacheTTL
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}

			var app *ourassets.App
			app = ourassets.New(cfg, ourassets.ViewFuncs{},
				ourassets.WithPage("/", func(c echo.Context) templ.Component {
					return views.Home(app.Config.Name)
				}),
			)
			return run(app)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ourassets.EnvOr("ADDR", ":3000"), "listen address")
	cmd.Flags().StringVar(&staticDir, "static", ourassets.EnvOr("STATIC_DIR", "public"), "static asset root")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 0, "cache critical CSS file contents for this long")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func run(app *ourassets.App) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return app.Close()
}
