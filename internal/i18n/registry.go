package i18n

import (
	"fmt"
	"sync"
)

// DefaultLanguage is the host's fallback language tag.
const DefaultLanguage = "en"

// Variant is one translation payload. Plain strings are rendered by
// TranslateString; structured payloads (plural forms and the like) are
// stored verbatim for the translation-resource collaborator and stringified
// with fmt.Sprint if asked for directly.
type Variant any

// Table maps a translation key (conventionally the source-language phrase)
// to per-language variants.
type Table map[string]map[string]Variant

// Registry is the process-wide overlay store of translations. It is created
// once at host startup and lives for the process; there is no teardown.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]map[string]Variant
	lang    string
}

// NewRegistry creates an empty registry with the default language active.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]map[string]Variant),
		lang:    DefaultLanguage,
	}
}

// SetLanguage switches the active UI language. Host-side operation; modules
// only read through TranslateString.
func (r *Registry) SetLanguage(lang string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lang = lang
}

// Language returns the active UI language tag.
func (r *Registry) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// Register merges a table into the registry. For every (key, language) pair
// the supplied variant replaces any existing one; languages not mentioned
// for a key are left untouched. Last write wins in call order.
func (r *Registry) Register(table Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, langs := range table {
		existing, ok := r.entries[key]
		if !ok {
			existing = make(map[string]Variant, len(langs))
			r.entries[key] = existing
		}
		for lang, variant := range langs {
			existing[lang] = variant
		}
	}
}

// Lookup returns the raw variant for (key, lang) without any fallback.
func (r *Registry) Lookup(key, lang string) (Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	v, ok := langs[lang]
	return v, ok
}

// TranslateString resolves key for the active language, falling back to the
// default language and finally to the key itself, then substitutes
// %(name)s placeholders from vars. It never fails: a fully missing key
// comes back unornamented.
func (r *Registry) TranslateString(key string, vars map[string]any) string {
	r.mu.RLock()
	template := key
	if langs, ok := r.entries[key]; ok {
		if v, found := langs[r.lang]; found {
			template = variantText(v)
		} else if v, found := langs[DefaultLanguage]; found {
			template = variantText(v)
		}
	}
	r.mu.RUnlock()

	return Substitute(template, vars)
}

// variantText renders a variant as a template string. Structured payloads
// are stringified; their rich rendering belongs to the collaborating
// translation-resource layer.
func variantText(v Variant) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
