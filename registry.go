package msgcat

import (
	"sort"
	"sync"
)

// Registry holds the catalogs a process is currently serving, one per
// locale, and supports swapping in a rebuilt catalog while readers are
// active. A replaced catalog stays fully usable for anyone still holding
// it; the registry only drops its own reference.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{catalogs: map[string]*Catalog{}}
}

// Store registers c under its locale string, replacing any catalog
// previously held for that locale.
func (r *Registry) Store(c *Catalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalogs[c.LocaleString()] = c
}

// Get returns the catalog registered for the given locale string.
func (r *Registry) Get(localeString string) (*Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogs[localeString]
	return c, ok
}

// Drop removes the catalog registered for the given locale string, if
// any.
func (r *Registry) Drop(localeString string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.catalogs, localeString)
}

// Locales returns the locale strings with a registered catalog, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	locales := make([]string, 0, len(r.catalogs))
	for locale := range r.catalogs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}
