package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestStylesEmitsPreloadThenNoscript(t *testing.T) {
	x := NewExpander(Config{})
	got := x.Styles([]string{"/a.css", "/b.css"})
	want := `<link rel="preload" href="/a.css" as="style" onload="this.onload=null;this.rel='stylesheet'">` +
		`<noscript><link rel="stylesheet" href="/a.css"></noscript>` +
		`<link rel="preload" href="/b.css" as="style" onload="this.onload=null;this.rel='stylesheet'">` +
		`<noscript><link rel="stylesheet" href="/b.css"></noscript>`
	if got != want {
		t.Errorf("Styles = %q, want %q", got, want)
	}
}

func TestStylesEscapesAttributes(t *testing.T) {
	got := NewExpander(Config{}).Styles([]string{`/a.css"><script>`})
	if strings.Contains(got, `"><script>`) {
		t.Errorf("Styles did not escape reference: %q", got)
	}
}

func TestScriptsEmitsModuleTags(t *testing.T) {
	got := NewExpander(Config{}).Scripts([]string{"/a.js", "https://cdn.example.com/b.js"})
	want := `<script src="/a.js" type="module"></script>` +
		`<script src="https://cdn.example.com/b.js" type="module"></script>`
	if got != want {
		t.Errorf("Scripts = %q, want %q", got, want)
	}
}

func TestExpandersReturnEmptyForNoRefs(t *testing.T) {
	x := NewExpander(Config{})
	for name, got := range map[string]string{
		"Styles":         x.Styles(nil),
		"CriticalStyles": x.CriticalStyles([]string{}),
		"Scripts":        x.Scripts(nil),
		"Preconnect":     x.Preconnect(nil),
	} {
		if got != "" {
			t.Errorf("%s = %q, want empty", name, got)
		}
	}
}

func TestCriticalStylesInlinesFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"css/critical.css": {Data: []byte("body{margin:0}")},
		"top.css":          {Data: []byte("h1{color:red}")},
	}
	x := NewExpander(Config{}, WithFS(fsys))

	tests := []struct {
		ref  string
		want string
	}{
		{"/css/critical.css", "<style>body{margin:0}</style>"},
		{"css/critical.css", "<style>body{margin:0}</style>"},
		{"//top.css", "<style>h1{color:red}</style>"},
		{`\css\critical.css`, "<style>body{margin:0}</style>"},
		{"/missing.css", "<style></style>"},
		{"/../top.css", "<style></style>"},
		{"/", "<style></style>"},
		{"https://cdn.example.com/top.css", "<style></style>"},
	}
	for _, tt := range tests {
		if got := x.CriticalStyles([]string{tt.ref}); got != tt.want {
			t.Errorf("CriticalStyles(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestCriticalStylesKeepsOneBlockPerReference(t *testing.T) {
	fsys := fstest.MapFS{"a.css": {Data: []byte("a{}")}}
	x := NewExpander(Config{}, WithFS(fsys))
	got := x.CriticalStyles([]string{"/missing.css", "/a.css"})
	if want := "<style></style><style>a{}</style>"; got != want {
		t.Errorf("CriticalStyles = %q, want %q", got, want)
	}
}

func TestCriticalStylesReadsStaticRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "css"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "css", "site.css")
	if err := os.WriteFile(path, []byte(":root{--x:1}"), 0o644); err != nil {
		t.Fatal(err)
	}
	x := NewExpander(Config{StaticRoot: root})

	if got, want := x.CriticalStyles([]string{"/css/site.css"}), "<style>:root{--x:1}</style>"; got != want {
		t.Errorf("CriticalStyles = %q, want %q", got, want)
	}

	// Files are re-read on every call.
	if err := os.WriteFile(path, []byte(":root{--x:2}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, want := x.CriticalStyles([]string{"/css/site.css"}), "<style>:root{--x:2}</style>"; got != want {
		t.Errorf("CriticalStyles after edit = %q, want %q", got, want)
	}
}

func TestCriticalStylesWithoutRootIsEmpty(t *testing.T) {
	if got := NewExpander(Config{}).CriticalStyles([]string{"/a.css"}); got != "<style></style>" {
		t.Errorf("CriticalStyles = %q, want empty block", got)
	}
}

func TestCriticalStylesEscapesClosingTags(t *testing.T) {
	fsys := fstest.MapFS{"evil.css": {Data: []byte("a{}</style><script>alert(1)</script>")}}
	got := NewExpander(Config{}, WithFS(fsys)).CriticalStyles([]string{"/evil.css"})
	if strings.Count(got, "</style>") != 1 {
		t.Errorf("inlined content closed the style block: %q", got)
	}
}

func TestPreconnect(t *testing.T) {
	tests := []struct {
		name string
		refs []string
		want []string
	}{
		{
			name: "local paths are skipped",
			refs: []string{"/local.css", "js/app.js"},
		},
		{
			name: "origins from absolute urls",
			refs: []string{"/local.css", "https://cdn.example.com/x.css", "https://other.example.com/y.js"},
			want: []string{"https://cdn.example.com", "https://other.example.com"},
		},
		{
			name: "path query and fragment removed",
			refs: []string{"https://cdn.example.com/a/b.css?v=3#frag"},
			want: []string{"https://cdn.example.com"},
		},
		{
			name: "non default port kept",
			refs: []string{"http://localhost:8080/app.js"},
			want: []string{"http://localhost:8080"},
		},
		{
			name: "default port dropped",
			refs: []string{"https://cdn.example.com:443/a.css", "http://cdn.example.com:80/b.css"},
			want: []string{"https://cdn.example.com", "http://cdn.example.com"},
		},
		{
			name: "scheme prefix is case insensitive",
			refs: []string{"HTTPS://CDN.Example.com/a.css"},
			want: []string{"https://cdn.example.com"},
		},
		{
			name: "one hint per reference",
			refs: []string{"https://cdn.example.com/a.css", "https://cdn.example.com/b.css"},
			want: []string{"https://cdn.example.com", "https://cdn.example.com"},
		},
		{
			name: "malformed urls are skipped",
			refs: []string{"http://[::1", "https://%zz/", "httpfoo", "http:///nohost", "https://ok.example.com/a.css"},
			want: []string{"https://ok.example.com"},
		},
		{
			name: "ipv6 host",
			refs: []string{"https://[::1]/a.css", "https://[::1]:8443/a.css"},
			want: []string{"https://[::1]", "https://[::1]:8443"},
		},
	}
	x := NewExpander(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want strings.Builder
			for _, o := range tt.want {
				fmt.Fprintf(&want, `<link rel="preconnect" href="%s">`, o)
			}
			if got := x.Preconnect(tt.refs); got != want.String() {
				t.Errorf("Preconnect(%q) = %q, want %q", tt.refs, got, want.String())
			}
		})
	}
}
