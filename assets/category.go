// Package assets collects CSS, critical CSS and JavaScript references that
// templ components declare while a page renders, and emits the aggregated
// markup at a single point in the document.
//
// Declarations and render points share one request-scoped Registry. A
// render only sees references added by components that were evaluated
// before it in the same pass, so declarations belong above the render
// point (or in a layout that renders the head last).
package assets

import "fmt"

// Category partitions the registry. The set is closed.
type Category int

const (
	Style Category = iota
	CriticalStyle
	Script
)

var categoryNames = [...]string{
	Style:         "css",
	CriticalStyle: "criticalcss",
	Script:        "js",
}

// String returns the attribute suffix used for the category ("css",
// "criticalcss", "js").
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// key is the request store key for the category. Unknown categories are a
// programming error.
func (c Category) key() string {
	if c < 0 || int(c) >= len(categoryNames) {
		panic(fmt.Sprintf("assets: unknown category %d", int(c)))
	}
	return "assets." + categoryNames[c]
}
