package assets

import (
	"context"
	"strings"
)

// orderedSet keeps references in first-insertion order without duplicates.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(ref string) {
	if _, ok := s.seen[ref]; ok {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.seen[ref] = struct{}{}
	s.items = append(s.items, ref)
}

// Registry is the per-request view over the asset references declared so
// far. It holds no state of its own; every set lives in the request Store,
// so registries built over the same store see the same references.
//
// A Registry over a nil Store is valid: adds are dropped and reads are
// empty. Registries are not safe for concurrent use; one request is
// rendered by one pass.
type Registry struct {
	store Store
}

// NewRegistry returns a Registry backed by s.
func NewRegistry(s Store) *Registry {
	return &Registry{store: s}
}

// RegistryFrom returns a Registry over the request store carried by ctx.
func RegistryFrom(ctx context.Context) *Registry {
	return NewRegistry(StoreFrom(ctx))
}

func (r *Registry) set(c Category, create bool) *orderedSet {
	key := c.key()
	if r == nil || r.store == nil {
		return nil
	}
	if s, ok := r.store.Get(key).(*orderedSet); ok {
		return s
	}
	if !create {
		return nil
	}
	s := &orderedSet{}
	r.store.Set(key, s)
	return s
}

// Add registers ref under c. Blank references are ignored and a reference
// already present in c is not added again.
func (r *Registry) Add(c Category, ref string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return
	}
	if s := r.set(c, true); s != nil {
		s.add(ref)
	}
}

// All returns a copy of the references registered under c, in the order
// they were first added. It never returns nil.
func (r *Registry) All(c Category) []string {
	s := r.set(c, false)
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// AllOf concatenates All for each category in the order given.
func (r *Registry) AllOf(cats ...Category) []string {
	out := []string{}
	for _, c := range cats {
		out = append(out, r.All(c)...)
	}
	return out
}
