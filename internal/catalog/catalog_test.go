package catalog

import (
	"errors"
	"testing"
)

func TestLoadSeed(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := len(c.Items()); got != ItemCount {
		t.Fatalf("expected %d items, got %d", ItemCount, got)
	}

	seen := make(map[int]bool)
	for _, it := range c.Items() {
		if seen[it.ID] {
			t.Errorf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestBuildRejectsWrongCount(t *testing.T) {
	short := make([]Item, ItemCount-1)
	copy(short, seedItems[:ItemCount-1])

	_, err := build(short)
	var ce *CatalogError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CatalogError for 29 items, got %v", err)
	}

	long := make([]Item, 0, ItemCount+1)
	long = append(long, seedItems...)
	extra := seedItems[0]
	extra.ID = 99
	long = append(long, extra)

	if _, err := build(long); !errors.As(err, &ce) {
		t.Fatalf("expected *CatalogError for 31 items, got %v", err)
	}
}

func TestBuildRejectsDuplicateID(t *testing.T) {
	items := make([]Item, ItemCount)
	copy(items, seedItems)
	items[1].ID = items[0].ID

	_, err := build(items)
	var ce *CatalogError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CatalogError for duplicate id, got %v", err)
	}
}

func TestBuildRejectsEmptyFields(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Item)
	}{
		{"name", func(it *Item) { it.Name = " " }},
		{"category", func(it *Item) { it.Category = "other" }},
		{"description", func(it *Item) { it.Description = "" }},
		{"criteria", func(it *Item) { it.Criteria = "" }},
		{"example", func(it *Item) { it.Example = "" }},
		{"cues", func(it *Item) { it.ExampleCues = nil }},
		{"graduation", func(it *Item) { it.Graduation[2] = "" }},
		{"grade", func(it *Item) { it.DefaultGrade = 7 }},
	}

	for _, tt := range mutations {
		items := make([]Item, ItemCount)
		copy(items, seedItems)
		tt.mutate(&items[4])

		_, err := build(items)
		var ce *CatalogError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected *CatalogError, got %v", tt.name, err)
		}
	}
}

func TestLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	it, err := c.Lookup(5)
	if err != nil {
		t.Fatalf("Lookup(5) failed: %v", err)
	}
	if it.Name != "Derailment" {
		t.Errorf("Lookup(5).Name = %q, want Derailment", it.Name)
	}

	_, err = c.Lookup(31)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError for id 31, got %v", err)
	}
	if nf.ID != 31 {
		t.Errorf("NotFoundError.ID = %d, want 31", nf.ID)
	}
}

func TestResolveAlias(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text   string
		wantID int
		found  bool
	}{
		{"Derailment", 5, true},
		{"derailment", 5, true},
		{"  ALOGIA  ", 1, true},
		{"I think this shows loosening of associations", 5, true},
		{"word salad", 21, true},
		{"clang association", 16, true},
		{"something entirely unrelated", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		it, ok := c.ResolveAlias(tt.text)
		if ok != tt.found {
			t.Errorf("ResolveAlias(%q) found = %v, want %v", tt.text, ok, tt.found)
			continue
		}
		if ok && it.ID != tt.wantID {
			t.Errorf("ResolveAlias(%q) = item %d, want %d", tt.text, it.ID, tt.wantID)
		}
	}
}

func TestResolveAliasTieBreak(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	// "blocking" is a synonym of both Loss of Thought (7) and Rupture of
	// Thought (8). Equal match length resolves to insertion order.
	it, ok := c.ResolveAlias("blocking")
	if !ok {
		t.Fatal("expected a match for ambiguous synonym")
	}
	if it.ID != 7 {
		t.Errorf("ambiguous alias resolved to item %d, want 7 (insertion order)", it.ID)
	}

	// A longer label beats a shorter one regardless of order.
	it, ok = c.ResolveAlias("patient shows subjective blocking of thoughts")
	if !ok {
		t.Fatal("expected a match")
	}
	if it.ID != 28 {
		t.Errorf("longest-match tie-break resolved to item %d, want 28", it.ID)
	}
}

func TestSynonymsIntersect(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	loss, _ := c.Lookup(7)
	rupture, _ := c.Lookup(8)
	clanging, _ := c.Lookup(16)
	neologisms, _ := c.Lookup(13)

	if !SynonymsIntersect(loss, rupture) {
		t.Error("Loss of Thought and Rupture of Thought should share a synonym")
	}
	if SynonymsIntersect(neologisms, clanging) {
		t.Error("Neologisms and Clanging must not share synonyms")
	}
}
