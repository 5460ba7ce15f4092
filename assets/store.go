package assets

import "context"

// Store is a key-value store that lives exactly as long as one request.
// echo.Context satisfies it.
type Store interface {
	Get(key string) any
	Set(key string, val any)
}

// MapStore is an in-memory Store for hosts without a request object of
// their own, and for tests.
type MapStore map[string]any

func (m MapStore) Get(key string) any      { return m[key] }
func (m MapStore) Set(key string, val any) { m[key] = val }

type ctxKey int

const (
	storeKey ctxKey = iota
	expanderKey
)

// WithStore returns a copy of ctx carrying s as the request store.
func WithStore(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, storeKey, s)
}

// StoreFrom returns the request store carried by ctx, or nil when the
// request has none.
func StoreFrom(ctx context.Context) Store {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(storeKey).(Store)
	return s
}

// NewContext attaches a fresh MapStore to ctx. Use it to render pages
// outside of an echo request, e.g. into a buffer.
func NewContext(ctx context.Context) context.Context {
	return WithStore(ctx, MapStore{})
}

// WithExpander returns a copy of ctx carrying x for package-level Tag calls.
func WithExpander(ctx context.Context, x *Expander) context.Context {
	return context.WithValue(ctx, expanderKey, x)
}

// ExpanderFrom returns the expander carried by ctx. Without one it returns
// an expander that has no static root, so critical styles render empty.
func ExpanderFrom(ctx context.Context) *Expander {
	if ctx != nil {
		if x, ok := ctx.Value(expanderKey).(*Expander); ok && x != nil {
			return x
		}
	}
	return fallbackExpander
}
