package sbol

import "sort"

// registry stores one kind of top-level entity keyed by resolved URI.
type registry[T TopLevel] struct {
	kind  string
	items map[string]T
}

func newRegistry[T TopLevel](kind string) *registry[T] {
	return &registry[T]{kind: kind, items: make(map[string]T)}
}

func (r *registry[T]) add(key string, e T) error {
	if _, ok := r.items[key]; ok {
		return &IdentityError{Kind: r.kind, Identity: key, Err: ErrDuplicateIdentity}
	}
	r.items[key] = e
	return nil
}

func (r *registry[T]) has(key string) bool {
	_, ok := r.items[key]
	return ok
}

func (r *registry[T]) get(key string) (T, bool) {
	e, ok := r.items[key]
	return e, ok
}

func (r *registry[T]) remove(key string) {
	delete(r.items, key)
}

// list returns the entities ordered by key.
func (r *registry[T]) list() []T {
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.items[k])
	}
	return out
}

func (r *registry[T]) len() int { return len(r.items) }

func (r *registry[T]) clear() {
	r.items = make(map[string]T)
}
