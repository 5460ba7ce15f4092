package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/ourassets/assets"
)

func text(tag, s string) templ.Component {
	return templ.Raw("<" + tag + ">" + templ.EscapeString(s) + "</" + tag + ">")
}

// Hero is a partial that brings its own stylesheet.
func Hero(title string) templ.Component {
	return templ.Join(
		assets.AddCSS("/css/hero.css"),
		templ.Raw(`<section class="hero">`),
		text("h1", title),
		templ.Raw(`</section>`),
	)
}

// Home is the demo landing page served by the CLI.
func Home(siteName string) templ.Component {
	body := templ.Join(
		assets.AddCriticalCSS("/css/critical.css"),
		assets.AddCSS("/css/site.css"),
		assets.AddCSS("https://fonts.googleapis.com/css2?family=Inter&display=swap"),
		Hero(siteName),
		text("p", "Assets on this page were declared by the components that need them."),
		assets.AddJS("/js/app.js"),
		// Declared twice, rendered once.
		assets.AddCSS("/css/site.css"),
		Scripts(),
	)
	return Document(PageMeta{Title: siteName, Description: "Per-request asset collection"}, nil, body)
}

// NotFound is the default 404 page.
func NotFound(siteName string) templ.Component {
	return Document(PageMeta{Title: "Not found | " + siteName}, nil, text("h1", "Page not found"))
}

// ServerError is the default 500 page.
func ServerError(siteName string) templ.Component {
	return Document(PageMeta{Title: "Error | " + siteName}, nil, text("h1", "Something went wrong"))
}
