package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain() *Catalog {
	return NewCatalog(map[string][]Entry{
		"quiz": {
			{ID: "g1", Index: Index(0), IsSpecial: true, Path: "/g1"},
			{ID: "g2", Index: Index(1), IsSpecial: true, Path: "/g2"},
		},
	})
}

func TestResolveNext(t *testing.T) {
	r := NewResolver(chain())

	assert.Equal(t, Target{Path: "/g2", ID: "g2"}, r.ResolveNext("quiz", "g1", nil))
	assert.Equal(t, Target{}, r.ResolveNext("quiz", "g2", nil), "end of category")
	assert.Equal(t, Target{}, r.ResolveNext("quiz", "missing", nil))
	assert.Equal(t, Target{}, r.ResolveNext("other", "g1", nil))
}

func TestResolveNextOverrideWins(t *testing.T) {
	r := NewResolver(chain())

	override := &Target{Path: "/bonus", ID: "bonus"}
	assert.Equal(t, *override, r.ResolveNext("quiz", "g1", override))

	// Even an empty override short-circuits lookup.
	assert.Equal(t, Target{}, r.ResolveNext("quiz", "g1", &Target{}))
}

func TestResolveNextSkipsIneligibleEntries(t *testing.T) {
	tests := []struct {
		name string
		next Entry
	}{
		{"not special", Entry{ID: "g2", Index: Index(1), Path: "/g2"}},
		{"no path", Entry{ID: "g2", Index: Index(1), IsSpecial: true}},
		{"no index", Entry{ID: "g2", IsSpecial: true, Path: "/g2"}},
		{"gap", Entry{ID: "g2", Index: Index(2), IsSpecial: true, Path: "/g2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(map[string][]Entry{
				"quiz": {{ID: "g1", Index: Index(0), IsSpecial: true, Path: "/g1"}, tt.next},
			})
			assert.False(t, NewResolver(c).ResolveNext("quiz", "g1", nil).Found())
		})
	}
}

func TestResolveNextCurrentWithoutIndex(t *testing.T) {
	c := NewCatalog(map[string][]Entry{
		"quiz": {
			{ID: "g1", IsSpecial: true, Path: "/g1"},
			{ID: "g2", Index: Index(1), IsSpecial: true, Path: "/g2"},
		},
	})
	assert.Equal(t, Target{}, NewResolver(c).ResolveNext("quiz", "g1", nil))
}

type failingLoader struct{ panics bool }

func (f failingLoader) Load(string) ([]Entry, error) {
	if f.panics {
		panic("registry exploded")
	}
	return nil, errors.New("unavailable")
}

func TestResolveNextDegradesOnFailure(t *testing.T) {
	assert.Equal(t, Target{}, NewResolver(failingLoader{}).ResolveNext("quiz", "g1", nil))
	assert.NotPanics(t, func() {
		assert.Equal(t, Target{}, NewResolver(failingLoader{panics: true}).ResolveNext("quiz", "g1", nil))
	})
	assert.Equal(t, Target{}, NewResolver(nil).ResolveNext("quiz", "g1", nil))

	var r *Resolver
	assert.Equal(t, Target{}, r.ResolveNext("quiz", "g1", nil))
}

func TestCatalogIsImmutable(t *testing.T) {
	src := map[string][]Entry{"quiz": {{ID: "g1", Index: Index(0)}}}
	c := NewCatalog(src)

	*src["quiz"][0].Index = 5
	src["quiz"][0].ID = "changed"

	entries, err := c.Load("quiz")
	require.NoError(t, err)
	assert.Equal(t, "g1", entries[0].ID)
	assert.Equal(t, 0, *entries[0].Index)

	*entries[0].Index = 9
	again, _ := c.Load("quiz")
	assert.Equal(t, 0, *again[0].Index)
}

func TestCatalogMerge(t *testing.T) {
	base := chain()
	extra := NewCatalog(map[string][]Entry{
		"quiz":  {{ID: "only", Index: Index(0)}},
		"bonus": {{ID: "b1", Index: Index(0)}},
	})

	merged := base.Merge(extra)
	assert.Equal(t, []string{"bonus", "quiz"}, merged.Categories())

	entries, err := merged.Load("quiz")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "only", entries[0].ID)

	// base is untouched
	entries, _ = base.Load("quiz")
	assert.Len(t, entries, 2)

	assert.Equal(t, base.Categories(), base.Merge(nil).Categories())
}

func TestCatalogLoadUnknown(t *testing.T) {
	_, err := chain().Load("nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
