// Package catalog loads the shop's item list.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/frankieli/roulette/internal/modules/economy/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type itemDoc struct {
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Description string `yaml:"description"`
	Effect      string `yaml:"effect"`
	Value       string `yaml:"value"`
}

type catalogDoc struct {
	Items []itemDoc `yaml:"items"`
}

// Catalog is an ordered, name-indexed list of shop items
type Catalog struct {
	items  []domain.Item
	byName map[string]domain.Item
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse reads a catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]domain.Item, len(doc.Items))}
	for _, s := range doc.Items {
		item, err := s.toItem()
		if err != nil {
			return nil, err
		}
		if _, dup := c.byName[item.Name]; dup {
			return nil, fmt.Errorf("duplicate item %q", item.Name)
		}
		c.items = append(c.items, item)
		c.byName[item.Name] = item
	}
	return c, nil
}

func (s itemDoc) toItem() (domain.Item, error) {
	name := strings.ToLower(strings.TrimSpace(s.Name))
	if name == "" {
		return domain.Item{}, fmt.Errorf("item without a name")
	}
	if s.Price <= 0 {
		return domain.Item{}, fmt.Errorf("item %q: price must be positive", name)
	}

	effect := domain.Effect(s.Effect)
	switch effect {
	case domain.EffectSavingsRate, domain.EffectWorkMultiplier:
	default:
		return domain.Item{}, fmt.Errorf("item %q: unknown effect %q", name, s.Effect)
	}

	value, err := decimal.NewFromString(s.Value)
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %q: bad value %q: %w", name, s.Value, err)
	}

	return domain.Item{
		Name:        name,
		Price:       s.Price,
		Description: s.Description,
		Effect:      effect,
		Value:       value,
	}, nil
}

// Items returns the items in catalog order
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by name, case-insensitively
func (c *Catalog) Lookup(name string) (domain.Item, bool) {
	item, ok := c.byName[strings.ToLower(name)]
	return item, ok
}
