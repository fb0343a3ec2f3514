package game

import (
	"citizen-dojo/pkg/registry"
)

// Registry holds all available games in play order.
type Registry struct {
	games []Game
}

// NewRegistry creates a new game registry with all available games.
func NewRegistry() *Registry {
	return &Registry{
		games: []Game{
			// Online Safety
			NewPasswordPower(),
			NewStrangerChat(),
			NewPopupReflex(),

			// Media Literacy
			NewFakeOrFact(),
			NewHeadlineSorter(),

			// Digital Footprint
			NewShareOrNot(),
			NewConsentCheck(),
			NewKindnessPledge(),
		},
	}
}

// List returns all available games.
func (r *Registry) List() []Game {
	return r.games
}

// Get returns a game by its ID.
func (r *Registry) Get(id string) Game {
	for _, g := range r.games {
		if g.GetMetadata().ID == id {
			return g
		}
	}
	return nil
}

// Count returns the number of available games.
func (r *Registry) Count() int {
	return len(r.games)
}

// Categories returns the categories that have at least one game, in
// CategoryOrder followed by any others in first-seen order.
func (r *Registry) Categories() []Category {
	seen := make(map[Category]bool)
	for _, g := range r.games {
		seen[g.GetMetadata().Category] = true
	}
	var out []Category
	for _, c := range CategoryOrder {
		if seen[c] {
			out = append(out, c)
			delete(seen, c)
		}
	}
	for _, g := range r.games {
		if c := g.GetMetadata().Category; seen[c] {
			out = append(out, c)
			delete(seen, c)
		}
	}
	return out
}

// InCategory returns the games of c in play order.
func (r *Registry) InCategory(c Category) []Game {
	var out []Game
	for _, g := range r.games {
		if g.GetMetadata().Category == c {
			out = append(out, g)
		}
	}
	return out
}

// Catalog builds the built-in registry snapshot: games chain in play order
// within their category.
func (r *Registry) Catalog() *registry.Catalog {
	categories := make(map[string][]registry.Entry)
	for _, c := range r.Categories() {
		for i, g := range r.InCategory(c) {
			id := g.GetMetadata().ID
			categories[string(c)] = append(categories[string(c)], registry.Entry{
				ID:        id,
				Index:     registry.Index(i),
				IsSpecial: true,
				Path:      c.Path(id),
			})
		}
	}
	return registry.NewCatalog(categories)
}
