package compare

import (
	"errors"
	"testing"

	"github.com/abhisek/taldlab/internal/catalog"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(c)
}

func findResult(t *testing.T, results []MatchResult, id int) MatchResult {
	t.Helper()
	for _, r := range results {
		if r.ItemID == id {
			return r
		}
	}
	t.Fatalf("no result for item %d in %+v", id, results)
	return MatchResult{}
}

func TestCompareExact(t *testing.T) {
	e := newEngine(t)

	// Derailment identified as Derailment.
	results, err := e.Compare([]int{5}, []int{5})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Match != MatchExact || r.Confidence != ConfidenceExact {
		t.Errorf("expected exact match with confidence 1.0, got %+v", r)
	}
}

func TestCompareUnrelatedItemsAreNone(t *testing.T) {
	e := newEngine(t)

	// Neologisms judged, Clanging enacted: same category but no synonym
	// overlap, so neither side gets credit.
	results, err := e.Compare([]int{13}, []int{16})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if r := findResult(t, results, 13); r.Match != MatchNone || r.Confidence != 0 {
		t.Errorf("expected none for judged item, got %+v", r)
	}
	if r := findResult(t, results, 16); r.Match != MatchNone || r.Confidence != 0 {
		t.Errorf("expected none for enacted item, got %+v", r)
	}
}

func TestComparePartialPair(t *testing.T) {
	e := newEngine(t)

	// Loss of Thought judged, Rupture of Thought enacted: same category and
	// a shared synonym, so both sides form one partial pair.
	results, err := e.Compare([]int{7}, []int{8})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	judged := findResult(t, results, 7)
	if judged.Match != MatchPartial || judged.Confidence != ConfidencePartial || judged.CounterpartID != 8 {
		t.Errorf("unexpected judged result: %+v", judged)
	}
	enacted := findResult(t, results, 8)
	if enacted.Match != MatchPartial || enacted.CounterpartID != 7 {
		t.Errorf("unexpected enacted result: %+v", enacted)
	}
}

func TestComparePartialRequiresSameCategory(t *testing.T) {
	e := newEngine(t)

	// Loss of Thought (objective) vs Thought Blocking (subjective): related
	// phenomena but different categories, so no partial credit.
	results, err := e.Compare([]int{7}, []int{28})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, r := range results {
		if r.Match != MatchNone {
			t.Errorf("expected none across categories, got %+v", r)
		}
	}
}

func TestCompareOrderedByID(t *testing.T) {
	e := newEngine(t)

	results, err := e.Compare([]int{21, 5}, []int{13, 5})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].ItemID >= results[i].ItemID {
			t.Fatalf("results not ordered by id: %+v", results)
		}
	}
}

func TestComparePartialPairedAtMostOnce(t *testing.T) {
	e := newEngine(t)

	// Two judged items both sharing a synonym with one enacted item: only
	// one forms the partial pair, the other is none.
	results, err := e.Compare([]int{7, 8}, []int{7}) // 7 exact, 8 left over
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if r := findResult(t, results, 7); r.Match != MatchExact {
		t.Errorf("expected exact for 7, got %+v", r)
	}
	// 7 is consumed by the exact match, so 8 cannot pair with it.
	if r := findResult(t, results, 8); r.Match != MatchNone {
		t.Errorf("expected none for 8, got %+v", r)
	}
}

func TestCompareRejectsUnknownID(t *testing.T) {
	e := newEngine(t)

	_, err := e.Compare([]int{99}, []int{5})
	var nfErr *catalog.NotFoundError
	if err == nil || !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestResolveAnswerText(t *testing.T) {
	e := newEngine(t)

	// "loosening of associations" is a synonym of Derailment, so naming
	// both yields item 5 once.
	ids, err := e.ResolveAnswerText([]string{"Derailment", "loosening of associations", "word salad"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(ids) != 2 || ids[0] != 5 || ids[1] != 21 {
		t.Errorf("unexpected ids: %v", ids)
	}

	if _, err := e.ResolveAnswerText([]string{"no such phenomenon"}); err == nil {
		t.Fatal("expected error for unresolvable text")
	}
}
