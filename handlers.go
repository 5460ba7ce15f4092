package ourassets

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/ourassets/assets"
)

func (a *App) handlePage(view func(c echo.Context) templ.Component) echo.HandlerFunc {
	return func(c echo.Context) error {
		cmp := view(c)
		if cmp == nil {
			return echo.ErrNotFound
		}
		return Render(c, cmp)
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	// Error pages are transient and must not show assets the failed page
	// declared, so they get their own registry.
	c.Response().Header().Set("Cache-Control", "no-store")
	req := c.Request()
	c.SetRequest(req.WithContext(assets.WithStore(req.Context(), assets.MapStore{})))

	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
