// Package registry resolves which game follows the current one in its
// category.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"k8s.io/klog/v2"
)

// ErrUnknownCategory is returned by a Loader that has no entries for a category.
var ErrUnknownCategory = errors.New("unknown category")

// Entry describes one game's position in its category.
type Entry struct {
	ID string `json:"id"`
	// Index is nil for games outside the chain.
	Index     *int   `json:"index,omitempty"`
	IsSpecial bool   `json:"isSpecial"`
	Path      string `json:"path,omitempty"`
}

// Target is where "Next" leads. The zero value means there is nowhere to go.
type Target struct {
	Path string `json:"nextPath,omitempty"`
	ID   string `json:"nextId,omitempty"`
}

// Found reports whether t points at a game.
func (t Target) Found() bool {
	return t.Path != "" || t.ID != ""
}

// Loader returns the ordered entries of a category.
type Loader interface {
	Load(category string) ([]Entry, error)
}

// Catalog is an immutable set of category registries.
type Catalog struct {
	categories map[string][]Entry
}

// NewCatalog copies categories into a new Catalog.
func NewCatalog(categories map[string][]Entry) *Catalog {
	c := &Catalog{categories: make(map[string][]Entry, len(categories))}
	for name, entries := range categories {
		c.categories[name] = cloneEntries(entries)
	}
	return c
}

// Merge returns a catalog where each category present in other replaces the
// same category in c.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := NewCatalog(c.categories)
	if other == nil {
		return merged
	}
	for name, entries := range other.categories {
		merged.categories[name] = cloneEntries(entries)
	}
	return merged
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load implements Loader.
func (c *Catalog) Load(category string) ([]Entry, error) {
	entries, ok := c.categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return cloneEntries(entries), nil
}

// Resolver finds the next game in a category.
type Resolver struct {
	loader Loader
}

// NewResolver creates a Resolver reading registries from loader.
func NewResolver(loader Loader) *Resolver {
	return &Resolver{loader: loader}
}

// ResolveNext returns the game after currentID in category.
//
// A non-nil override is returned as is. Otherwise the next game is the
// special entry with a path whose index is one past currentID's. Every
// failure resolves to the zero Target.
func (r *Resolver) ResolveNext(category, currentID string, override *Target) (next Target) {
	if override != nil {
		return *override
	}

	defer func() {
		if rec := recover(); rec != nil {
			klog.ErrorS(fmt.Errorf("%v", rec), "Registry lookup panicked", "category", category, "game", currentID)
			next = Target{}
		}
	}()

	if r == nil || r.loader == nil {
		return Target{}
	}
	entries, err := r.loader.Load(category)
	if err != nil {
		klog.V(2).InfoS("Registry unavailable", "category", category, "err", err)
		return Target{}
	}

	var current *Entry
	for i := range entries {
		if entries[i].ID == currentID {
			current = &entries[i]
			break
		}
	}
	if current == nil || current.Index == nil {
		klog.V(2).InfoS("Game not chained in registry", "category", category, "game", currentID)
		return Target{}
	}

	want := *current.Index + 1
	for _, e := range entries {
		if e.Index != nil && *e.Index == want && e.IsSpecial && e.Path != "" {
			return Target{Path: e.Path, ID: e.ID}
		}
	}
	return Target{}
}

// Index returns a pointer to i, for building entries.
func Index(i int) *int {
	return &i
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Index != nil {
			e.Index = Index(*e.Index)
		}
		out[i] = e
	}
	return out
}
