// Package catalog owns the presentation configuration of the view layer:
// the fixed category set with icon and color per category, and the quick
// amount suggestions on the entry form. The data is an embedded YAML file;
// the core never depends on it.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var categoriesYAML []byte

type Category struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

type Catalog struct {
	Categories  []Category `yaml:"categories"`
	Suggestions []int      `yaml:"suggestions"`

	byName map[string]Category
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(categoriesYAML, &c); err != nil {
		return nil, fmt.Errorf("parse category catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("category catalog is empty")
	}
	c.byName = make(map[string]Category, len(c.Categories))
	for _, cat := range c.Categories {
		c.byName[cat.Name] = cat
	}
	return &c, nil
}

// Lookup returns the catalog entry for name. Unknown categories get a
// neutral fallback so stale records still render.
func (c *Catalog) Lookup(name string) Category {
	if cat, ok := c.byName[name]; ok {
		return cat
	}
	return Category{Name: name, Icon: "💳", Color: "#888888"}
}

// Names returns the category names in catalog order, for the entry form.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}
