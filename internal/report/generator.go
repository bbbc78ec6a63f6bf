// Package report turns an evaluation into trainee-facing feedback. Report
// generation is pure and deterministic; the optional LLM commentary is a
// separate step that callers may skip or drop on failure.
package report

import (
	"github.com/abhisek/taldlab/internal/catalog"
	"github.com/abhisek/taldlab/internal/compare"
	"github.com/abhisek/taldlab/internal/evaluate"
	"github.com/abhisek/taldlab/internal/persona"
)

// ItemExplanation is the catalog-backed explanation for one item the
// evaluation referenced.
type ItemExplanation struct {
	ItemID      int
	Name        string
	Category    catalog.Category
	Match       compare.Match
	Confidence  float64
	Rationale   string
	Description string
	Criteria    string
	Example     string
}

// Report is the feedback document for one evaluated session.
type Report struct {
	SessionID string
	Mode      persona.Mode

	Score        float64
	Outcome      compare.Match
	OutcomeScore float64
	ProcessScore float64
	ProbedCues   []string

	TurnCount          int
	Items              []ItemExplanation
	MissedItems        []int
	FalsePositiveItems []int

	// Commentary is attached by a Commentator after generation. Nil when
	// commentary was skipped or failed.
	Commentary *Commentary
}

// Generate builds a report from an evaluation. Every item the evaluation
// references is explained from the catalog; an unknown id means the
// evaluation and catalog disagree and surfaces as *catalog.NotFoundError.
func Generate(c *catalog.Catalog, ev *evaluate.Evaluation) (*Report, error) {
	r := &Report{
		SessionID:          ev.SessionID,
		Mode:               ev.Mode,
		Score:              ev.Score,
		Outcome:            ev.Outcome,
		OutcomeScore:       ev.OutcomeScore,
		ProcessScore:       ev.ProcessScore,
		ProbedCues:         append([]string(nil), ev.ProbedCues...),
		TurnCount:          ev.TurnCount,
		MissedItems:        append([]int(nil), ev.MissedItems...),
		FalsePositiveItems: append([]int(nil), ev.FalsePositiveItems...),
	}

	for _, res := range ev.Results {
		item, err := c.Lookup(res.ItemID)
		if err != nil {
			return nil, err
		}
		r.Items = append(r.Items, ItemExplanation{
			ItemID:      item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Match:       res.Match,
			Confidence:  res.Confidence,
			Rationale:   res.Rationale,
			Description: item.Description,
			Criteria:    item.Criteria,
			Example:     item.Example,
		})
	}

	return r, nil
}
