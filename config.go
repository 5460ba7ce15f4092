package ourassets

import (
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// SiteConfig holds all configuration for an ourassets site.
type SiteConfig struct {
	Name string // Site name (default "Site")
	Addr string // Listen address (default ":3000")

	StaticDir    string // Static asset root on disk (default "public")
	StaticPrefix string // URL prefix the static root is served under (default "/")

	FileCacheTTL          time.Duration // Cache critical CSS contents for this long (0 disables)
	ContentSecurityPolicy string        // CSP header (default allows https: styles, scripts and fonts)
	Debug                 bool          // Debug logging, including skipped preconnect URLs
}

const defaultCSP = "default-src 'self'; script-src 'self' 'unsafe-inline' https:; style-src 'self' 'unsafe-inline' https:; img-src 'self' https: data:; font-src 'self' https: data:; connect-src 'self'"

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Site"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.StaticPrefix == "" {
		c.StaticPrefix = "/"
	}
	if c.ContentSecurityPolicy == "" {
		c.ContentSecurityPolicy = defaultCSP
	}
}

// ConfigFromEnv builds a SiteConfig from SITE_NAME, ADDR, STATIC_DIR,
// STATIC_PREFIX, FILE_CACHE_TTL and DEBUG. Unset values keep their defaults.
func ConfigFromEnv() SiteConfig {
	cfg := SiteConfig{
		Name:         os.Getenv("SITE_NAME"),
		Addr:         os.Getenv("ADDR"),
		StaticDir:    os.Getenv("STATIC_DIR"),
		StaticPrefix: os.Getenv("STATIC_PREFIX"),
	}
	if v := os.Getenv("FILE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("ourassets: ignoring FILE_CACHE_TTL=%q: %v", v, err)
		} else {
			cfg.FileCacheTTL = ttl
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithPage serves the component built by view at path.
func WithPage(path string, view func(c echo.Context) templ.Component) Option {
	return func(a *App) {
		a.pages = append(a.pages, page{path: path, view: view})
	}
}

// WithStaticFS reads critical CSS from fsys instead of StaticDir. Static
// file serving still uses StaticDir.
func WithStaticFS(fsys fs.FS) Option {
	return func(a *App) {
		a.staticFS = fsys
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
