package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Config is the read-only configuration of an Expander, fixed at startup.
type Config struct {
	// StaticRoot is the directory root-relative references resolve
	// against when critical styles are inlined.
	StaticRoot string
}

// Option configures an Expander.
type Option func(*Expander)

// WithFS reads critical styles from fsys instead of Config.StaticRoot.
func WithFS(fsys fs.FS) Option {
	return func(x *Expander) {
		x.files = fsys
	}
}

// WithLogger sets the logger used to report skipped preconnect URLs at
// debug level.
func WithLogger(l echo.Logger) Option {
	return func(x *Expander) {
		x.logger = l
	}
}

// Expander turns registered references into markup. It is immutable after
// construction and safe for concurrent use.
type Expander struct {
	files  fs.FS
	logger echo.Logger
}

var fallbackExpander = NewExpander(Config{})

// NewExpander creates an Expander for cfg.
func NewExpander(cfg Config, opts ...Option) *Expander {
	x := &Expander{}
	if cfg.StaticRoot != "" {
		x.files = os.DirFS(cfg.StaticRoot)
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Styles emits a non-blocking preload link per reference, followed by a
// plain stylesheet link for clients without script.
func (x *Expander) Styles(refs []string) string {
	var b strings.Builder
	for _, ref := range refs {
		href := templ.EscapeString(ref)
		b.WriteString(`<link rel="preload" href="` + href + `" as="style" onload="this.onload=null;this.rel='stylesheet'">`)
		b.WriteString(`<noscript><link rel="stylesheet" href="` + href + `"></noscript>`)
	}
	return b.String()
}

// CriticalStyles inlines the file behind each reference in a <style> block.
// A reference whose file cannot be read still yields an empty block.
// Files are read on every call.
func (x *Expander) CriticalStyles(refs []string) string {
	var b strings.Builder
	for _, ref := range refs {
		b.WriteString("<style>")
		b.WriteString(sanitizeCSS(x.readFile(ref)))
		b.WriteString("</style>")
	}
	return b.String()
}

// Scripts emits a module script tag per reference.
func (x *Expander) Scripts(refs []string) string {
	var b strings.Builder
	for _, ref := range refs {
		b.WriteString(`<script src="` + templ.EscapeString(ref) + `" type="module"></script>`)
	}
	return b.String()
}

// Preconnect emits a preconnect hint for the origin of every absolute
// http(s) reference. Hints are per reference, so two URLs on the same
// origin produce two hints. Local paths are skipped, as are URLs that
// fail to parse.
func (x *Expander) Preconnect(refs []string) string {
	var b strings.Builder
	for _, ref := range refs {
		if !hasHTTPPrefix(ref) {
			continue
		}
		o, err := originOf(ref)
		if err != nil {
			if x.logger != nil {
				x.logger.Debugf("assets: skipping preconnect for %q: %v", ref, err)
			}
			continue
		}
		b.WriteString(`<link rel="preconnect" href="` + templ.EscapeString(o) + `">`)
	}
	return b.String()
}

func (x *Expander) readFile(ref string) string {
	if x.files == nil {
		return ""
	}
	name := strings.TrimLeft(strings.ReplaceAll(ref, `\`, "/"), "/")
	if name == "" {
		return ""
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return ""
	}
	data, err := fs.ReadFile(x.files, name)
	if err != nil {
		return ""
	}
	return string(data)
}

// sanitizeCSS keeps inlined content from closing the surrounding block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func hasHTTPPrefix(ref string) bool {
	return len(ref) >= 4 && strings.EqualFold(ref[:4], "http")
}

var errMissingHost = errors.New("missing host")

// originOf reduces an absolute URL to scheme://host[:port]. Default ports
// are dropped.
func originOf(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", errMissingHost
	}
	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}
	switch {
	case port != "":
		host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}
	return scheme + "://" + host, nil
}
