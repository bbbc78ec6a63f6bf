package catalog

import (
	"fmt"
	"strings"
)

// ItemCount is the fixed size of the TALD scale.
const ItemCount = 30

// Catalog is the read-only registry of the 30 TALD items. It is loaded once
// at process start and is safe for concurrent reads.
type Catalog struct {
	items []Item
	byID  map[int]int // id → index into items, preserving insertion order
}

// Load validates the embedded seed and builds the catalog.
// It fails with *CatalogError unless exactly 30 well-formed entries with
// unique ids are present.
func Load() (*Catalog, error) {
	return build(seedItems)
}

func build(items []Item) (*Catalog, error) {
	if len(items) != ItemCount {
		return nil, &CatalogError{
			Reason: fmt.Sprintf("expected exactly %d items, got %d", ItemCount, len(items)),
		}
	}

	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}

	for _, it := range items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, &CatalogError{
				Reason: fmt.Sprintf("duplicate item id %d", it.ID),
			}
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}

	return c, nil
}

func validateItem(it Item) error {
	fail := func(format string, args ...any) error {
		return &CatalogError{Reason: fmt.Sprintf("item %d: ", it.ID) + fmt.Sprintf(format, args...)}
	}

	if it.ID <= 0 {
		return fail("id must be positive")
	}
	if strings.TrimSpace(it.Name) == "" {
		return fail("empty name")
	}
	if it.Category != CategoryObjective && it.Category != CategorySubjective {
		return fail("invalid category %q", it.Category)
	}
	if strings.TrimSpace(it.Description) == "" {
		return fail("empty description")
	}
	if strings.TrimSpace(it.Criteria) == "" {
		return fail("empty criteria")
	}
	if strings.TrimSpace(it.Example) == "" {
		return fail("empty example")
	}
	if len(it.ExampleCues) == 0 {
		return fail("no example cues")
	}
	for g, desc := range it.Graduation {
		if strings.TrimSpace(desc) == "" {
			return fail("empty graduation text for grade %d", g)
		}
	}
	if it.DefaultGrade < 0 || it.DefaultGrade > GradeMax {
		return fail("default grade %d out of range", it.DefaultGrade)
	}
	return nil
}

// Items returns every item in insertion order. The slice is a copy; the
// catalog itself is never mutated.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup returns the item with the given id, or *NotFoundError.
func (c *Catalog) Lookup(id int) (Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, &NotFoundError{ID: id}
	}
	return c.items[idx], nil
}

// Contains reports whether the catalog holds the given id.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// ResolveAlias matches free text against item names and synonyms,
// case-insensitively. A label matches when it equals the normalized text or
// appears inside it. When several items match, the one with the longest
// matched label wins; remaining ties go to catalog insertion order.
// The second return value is false when nothing matches.
func (c *Catalog) ResolveAlias(text string) (Item, bool) {
	needle := Normalize(text)
	if needle == "" {
		return Item{}, false
	}

	bestIdx := -1
	bestLen := 0
	for i, it := range c.items {
		labels := append([]string{it.Name}, it.Synonyms...)
		for _, label := range labels {
			l := Normalize(label)
			if l == "" {
				continue
			}
			if l != needle && !strings.Contains(needle, l) {
				continue
			}
			// Strictly longer match replaces; equal length keeps the
			// earlier item.
			if len(l) > bestLen {
				bestLen = len(l)
				bestIdx = i
			}
		}
	}

	if bestIdx < 0 {
		return Item{}, false
	}
	return c.items[bestIdx], true
}

// Normalize lower-cases and whitespace-trims a label or answer fragment so
// alias matching stays deterministic.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SynonymsIntersect reports whether two items share at least one normalized
// synonym. Used for partial-credit classification of clinically adjacent
// answers.
func SynonymsIntersect(a, b Item) bool {
	seen := make(map[string]bool, len(a.Synonyms))
	for _, s := range a.Synonyms {
		seen[Normalize(s)] = true
	}
	for _, s := range b.Synonyms {
		if seen[Normalize(s)] {
			return true
		}
	}
	return false
}
