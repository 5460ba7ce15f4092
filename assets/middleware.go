package assets

import "github.com/labstack/echo/v4"

// Middleware makes the echo.Context the request store for asset
// declarations and carries x to package-level Tag calls. Components
// rendered with c.Request().Context() see both.
func Middleware(x *Expander) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := WithStore(c.Request().Context(), c)
			ctx = WithExpander(ctx, x)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
