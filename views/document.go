package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/ourassets/assets"
)

// Document renders a full HTML page. The body is rendered before the head,
// so asset declarations anywhere in body are visible to the head's render
// point. Head defaults to Head() when nil.
func Document(meta PageMeta, head, body templ.Component) templ.Component {
	if head == nil {
		head = Head()
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var content bytes.Buffer
		if err := body.Render(ctx, &content); err != nil {
			return err
		}

		lang := meta.Lang
		if lang == "" {
			lang = "en"
		}
		var b bytes.Buffer
		b.WriteString(`<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString("<title>" + templ.EscapeString(meta.Title) + "</title>")
		if meta.Description != "" {
			b.WriteString(`<meta name="description" content="` + templ.EscapeString(meta.Description) + `">`)
		}
		if err := head.Render(ctx, &b); err != nil {
			return err
		}
		b.WriteString("</head><body>")
		b.Write(content.Bytes())
		b.WriteString("</body></html>")

		_, err := w.Write(b.Bytes())
		return err
	})
}

// Head is the default head render point: preconnect hints first, then
// critical CSS and deferred stylesheets. Scripts are left to Scripts at the
// end of body.
func Head() templ.Component {
	return templ.Join(
		assets.Tag(assets.TagProps{RenderPreconnect: true}),
		assets.Tag(assets.TagProps{RenderCriticalCSS: true, RenderCSS: true}),
	)
}

// Scripts is the body-end render point for module scripts.
func Scripts() templ.Component {
	return assets.Tag(assets.TagProps{RenderJS: true})
}
