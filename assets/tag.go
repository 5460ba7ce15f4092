package assets

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// TagProps are the attributes of one asset tag occurrence.
//
// An occurrence with any non-blank Add field is in add mode: every supplied
// reference is registered, the Render toggles are ignored and nothing is
// written. Otherwise it is in render mode and writes the enabled fragments
// in the order styles, critical styles, scripts, preconnect hints.
type TagProps struct {
	AddCSS         string
	AddCriticalCSS string
	AddJS          string

	RenderCSS         bool
	RenderCriticalCSS bool
	RenderJS          bool
	RenderPreconnect  bool
}

func (p TagProps) addMode() bool {
	return strings.TrimSpace(p.AddCSS) != "" ||
		strings.TrimSpace(p.AddCriticalCSS) != "" ||
		strings.TrimSpace(p.AddJS) != ""
}

// Tag returns a component for one tag occurrence rendered by x.
//
// A render-mode occurrence only sees references added by components
// evaluated before it in the same request.
func (x *Expander) Tag(p TagProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, x.Process(ctx, p))
		return err
	})
}

// Process applies p against the registry carried by ctx and returns the
// markup the occurrence produces, which is empty in add mode.
func (x *Expander) Process(ctx context.Context, p TagProps) string {
	reg := RegistryFrom(ctx)
	if p.addMode() {
		reg.Add(Style, p.AddCSS)
		reg.Add(CriticalStyle, p.AddCriticalCSS)
		reg.Add(Script, p.AddJS)
		return ""
	}

	var b strings.Builder
	if p.RenderCSS {
		b.WriteString(x.Styles(reg.All(Style)))
	}
	if p.RenderCriticalCSS {
		b.WriteString(x.CriticalStyles(reg.All(CriticalStyle)))
	}
	if p.RenderJS {
		b.WriteString(x.Scripts(reg.All(Script)))
	}
	if p.RenderPreconnect {
		b.WriteString(x.Preconnect(reg.AllOf(Style, Script)))
	}
	return b.String()
}

// Tag is like (*Expander).Tag but uses the expander carried by the render
// context, as installed by Middleware.
func Tag(p TagProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return ExpanderFrom(ctx).Tag(p).Render(ctx, w)
	})
}

// AddCSS declares a stylesheet.
func AddCSS(ref string) templ.Component { return Tag(TagProps{AddCSS: ref}) }

// AddCriticalCSS declares a stylesheet to inline.
func AddCriticalCSS(ref string) templ.Component { return Tag(TagProps{AddCriticalCSS: ref}) }

// AddJS declares a module script.
func AddJS(ref string) templ.Component { return Tag(TagProps{AddJS: ref}) }

// RenderAll renders every category and the preconnect hints.
func RenderAll() templ.Component {
	return Tag(TagProps{
		RenderCSS:         true,
		RenderCriticalCSS: true,
		RenderJS:          true,
		RenderPreconnect:  true,
	})
}
