// Package compare classifies a trainee's judged items against the items a
// persona actually enacted.
package compare

import (
	"fmt"
	"sort"

	"github.com/abhisek/taldlab/internal/catalog"
)

// Match classifies one item of a comparison.
type Match string

const (
	MatchExact   Match = "exact"
	MatchPartial Match = "partial"
	MatchNone    Match = "none"
)

// Confidence per match class.
const (
	ConfidenceExact   = 1.0
	ConfidencePartial = 0.5
)

// MatchResult is the classification of a single item. CounterpartID is set
// for partial matches and names the item on the other side of the near miss.
type MatchResult struct {
	ItemID        int
	Match         Match
	Confidence    float64
	Rationale     string
	CounterpartID int
}

// Engine compares candidate items against ground truth using the catalog's
// category and synonym data.
type Engine struct {
	catalog *catalog.Catalog
}

// New returns an Engine over the given catalog.
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// ResolveAnswerText maps free-text item references to catalog ids. Every
// entry must resolve; an unresolvable entry fails the whole answer.
// Distinct phrasings of the same item (a name plus one of its synonyms)
// collapse to a single id, first occurrence first.
func (e *Engine) ResolveAnswerText(texts []string) ([]int, error) {
	ids := make([]int, 0, len(texts))
	seen := make(map[int]bool, len(texts))
	for _, text := range texts {
		item, ok := e.catalog.ResolveAlias(text)
		if !ok {
			return nil, fmt.Errorf("answer %q does not match any catalog item or synonym", text)
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		ids = append(ids, item.ID)
	}
	return ids, nil
}

// Compare classifies every item in the union of candidates and ground truth,
// ordered by item id. An item on both sides is exact. A candidate-only item
// whose category and synonyms overlap a ground-truth-only item forms a
// partial pair; each side of the pair is used at most once. Everything else
// is none.
func (e *Engine) Compare(candidates, groundTruth []int) ([]MatchResult, error) {
	candSet, err := e.validateIDs(candidates)
	if err != nil {
		return nil, err
	}
	truthSet, err := e.validateIDs(groundTruth)
	if err != nil {
		return nil, err
	}

	exact := make(map[int]bool)
	for id := range candSet {
		if truthSet[id] {
			exact[id] = true
		}
	}

	candOnly := sortedKeys(candSet, exact)
	truthOnly := sortedKeys(truthSet, exact)

	// Pair near misses greedily in ascending id order.
	partialOf := make(map[int]int)
	taken := make(map[int]bool)
	for _, cid := range candOnly {
		cItem, _ := e.catalog.Lookup(cid)
		for _, gid := range truthOnly {
			if taken[gid] {
				continue
			}
			gItem, _ := e.catalog.Lookup(gid)
			if cItem.Category == gItem.Category && catalog.SynonymsIntersect(cItem, gItem) {
				partialOf[cid] = gid
				partialOf[gid] = cid
				taken[gid] = true
				break
			}
		}
	}

	union := make([]int, 0, len(candSet)+len(truthSet))
	seen := make(map[int]bool)
	for id := range candSet {
		seen[id] = true
		union = append(union, id)
	}
	for id := range truthSet {
		if !seen[id] {
			union = append(union, id)
		}
	}
	sort.Ints(union)

	results := make([]MatchResult, 0, len(union))
	for _, id := range union {
		item, _ := e.catalog.Lookup(id)
		switch {
		case exact[id]:
			results = append(results, MatchResult{
				ItemID:     id,
				Match:      MatchExact,
				Confidence: ConfidenceExact,
				Rationale:  fmt.Sprintf("%s was enacted and identified", item.DisplayName()),
			})
		case partialOf[id] != 0:
			other, _ := e.catalog.Lookup(partialOf[id])
			var rationale string
			if candSet[id] {
				rationale = fmt.Sprintf("%s was not enacted, but is a near miss for %s: same category, overlapping synonyms",
					item.DisplayName(), other.DisplayName())
			} else {
				rationale = fmt.Sprintf("%s was enacted and nearly identified as %s: same category, overlapping synonyms",
					item.DisplayName(), other.DisplayName())
			}
			results = append(results, MatchResult{
				ItemID:        id,
				Match:         MatchPartial,
				Confidence:    ConfidencePartial,
				Rationale:     rationale,
				CounterpartID: other.ID,
			})
		case candSet[id]:
			results = append(results, MatchResult{
				ItemID:     id,
				Match:      MatchNone,
				Confidence: 0,
				Rationale:  fmt.Sprintf("%s was identified but not enacted", item.DisplayName()),
			})
		default:
			results = append(results, MatchResult{
				ItemID:     id,
				Match:      MatchNone,
				Confidence: 0,
				Rationale:  fmt.Sprintf("%s was enacted but not identified", item.DisplayName()),
			})
		}
	}
	return results, nil
}

func (e *Engine) validateIDs(ids []int) (map[int]bool, error) {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		if _, err := e.catalog.Lookup(id); err != nil {
			return nil, err
		}
		set[id] = true
	}
	return set, nil
}

func sortedKeys(set, exclude map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		if !exclude[id] {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}
