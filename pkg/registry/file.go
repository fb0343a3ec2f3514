package registry

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// catalogDocument is the on-disk catalog format:
//
//	categories:
//	  online-safety:
//	    - id: password-power
//	      index: 0
//	      isSpecial: true
//	      path: /games/online-safety/password-power
type catalogDocument struct {
	Categories map[string][]Entry `json:"categories"`
}

// ParseCatalog decodes a YAML or JSON catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for name, entries := range doc.Categories {
		for i, e := range entries {
			if e.ID == "" {
				return nil, fmt.Errorf("category %q entry %d: missing id", name, i)
			}
		}
	}
	return NewCatalog(doc.Categories), nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes c in the catalog file format.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(catalogDocument{Categories: c.categories})
}
