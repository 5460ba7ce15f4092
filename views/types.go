package views

// PageMeta carries per-page metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	Lang        string // html lang attribute (default "en")
}
