package config

import "context"

// Document is the host configuration tree. Values under each top-level
// namespace are arbitrary nested data owned by whichever module claimed the
// namespace (convention: reverse-DNS-style names, not enforced).
type Document map[string]any

// Loader produces a Document from some concrete source format. A failure
// to load is fatal to host startup; there is no partial document.
type Loader interface {
	Load(ctx context.Context, path string) (Document, error)
}

// Accessor is the read-only, namespace-scoped view handed to modules.
// It holds the document by reference and never mutates it.
type Accessor struct {
	doc Document
}

// NewAccessor wraps a loaded document. A nil document behaves like an
// empty one.
func NewAccessor(doc Document) *Accessor {
	return &Accessor{doc: doc}
}

// Value returns doc[namespace][key] verbatim, unvalidated against any
// schema, or nil when the namespace or key is absent. The empty namespace
// always yields nil: root-level keys are deliberately unreachable.
func (a *Accessor) Value(namespace, key string) any {
	if namespace == "" {
		return nil
	}
	sub, ok := a.doc[namespace].(map[string]any)
	if !ok {
		return nil
	}
	return sub[key]
}

// As reads a namespaced value and asserts it to T. The second return is
// false when the value is absent or not a T; no coercion is attempted.
func As[T any](a *Accessor, namespace, key string) (T, bool) {
	v, ok := a.Value(namespace, key).(T)
	return v, ok
}
