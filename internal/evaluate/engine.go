// Package evaluate scores a closed training interview against the items
// the persona actually enacted.
package evaluate

import (
	"fmt"
	"strings"

	"github.com/abhisek/taldlab/internal/catalog"
	"github.com/abhisek/taldlab/internal/compare"
	"github.com/abhisek/taldlab/internal/interview"
	"github.com/abhisek/taldlab/internal/persona"
)

// Guided scoring weights.
const (
	OutcomeWeight = 0.70
	ProcessWeight = 0.30
)

// Evaluation is the scored result of one closed session.
type Evaluation struct {
	SessionID string
	Mode      persona.Mode

	// Score is in [0, 1]. Guided: OutcomeWeight·outcome + ProcessWeight·process.
	// Exploratory: exact matches over the size of the candidate/ground-truth
	// union.
	Score float64

	// Outcome labels the guided judgment (exact, partial or none). Empty in
	// exploratory mode.
	Outcome compare.Match
	// OutcomeScore and ProcessScore are the guided components before
	// weighting. Zero in exploratory mode.
	OutcomeScore float64
	ProcessScore float64
	// ProbedCues lists the assigned item's example cues found in the
	// trainee's questions. Guided mode only.
	ProbedCues []string

	JudgedItems        []int
	GroundTruth        []int
	Results            []compare.MatchResult
	MissedItems        []int
	FalsePositiveItems []int
	TurnCount          int
}

// Engine evaluates closed sessions.
type Engine struct {
	catalog *catalog.Catalog
	compare *compare.Engine
}

// New returns an Engine over the given catalog.
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c, compare: compare.New(c)}
}

// Evaluate scores the session's recorded judgment against the persona's
// assigned items. The session must be closed.
func (e *Engine) Evaluate(s *interview.Session) (*Evaluation, error) {
	if state := s.State(); state != interview.StateClosed {
		return nil, &interview.InvalidStateError{Op: "evaluate", State: state}
	}

	groundTruth := s.Persona.ItemIDs()
	turns := s.Transcript()

	ev := &Evaluation{
		SessionID:   s.ID,
		Mode:        s.Persona.Mode,
		GroundTruth: groundTruth,
		TurnCount:   len(turns),
	}

	switch j := s.Judgment().(type) {
	case interview.GuidedJudgment:
		ev.JudgedItems = []int{j.ItemID}
	case interview.ExploratoryJudgment:
		ev.JudgedItems = dedupIDs(j.ItemIDs)
	default:
		return nil, fmt.Errorf("session %s has no judgment", s.ID)
	}

	results, err := e.compare.Compare(ev.JudgedItems, groundTruth)
	if err != nil {
		return nil, err
	}
	ev.Results = results

	judged := make(map[int]bool, len(ev.JudgedItems))
	for _, id := range ev.JudgedItems {
		judged[id] = true
	}
	for _, r := range results {
		if r.Match != compare.MatchNone {
			continue
		}
		if judged[r.ItemID] {
			ev.FalsePositiveItems = append(ev.FalsePositiveItems, r.ItemID)
		} else {
			ev.MissedItems = append(ev.MissedItems, r.ItemID)
		}
	}

	switch ev.Mode {
	case persona.ModeGuided:
		e.scoreGuided(ev, turns)
	case persona.ModeExploratory:
		scoreExploratory(ev)
	default:
		return nil, fmt.Errorf("unknown session mode %q", ev.Mode)
	}

	return ev, nil
}

// scoreGuided combines the judgment outcome with how thoroughly the trainee
// probed for the assigned item.
func (e *Engine) scoreGuided(ev *Evaluation, turns []interview.Turn) {
	judgedID := ev.JudgedItems[0]
	for _, r := range ev.Results {
		if r.ItemID == judgedID {
			ev.Outcome = r.Match
			ev.OutcomeScore = r.Confidence
			break
		}
	}

	assigned, _ := e.catalog.Lookup(ev.GroundTruth[0])
	ev.ProcessScore, ev.ProbedCues = probeCoverage(assigned, turns)

	ev.Score = OutcomeWeight*ev.OutcomeScore + ProcessWeight*ev.ProcessScore
}

func scoreExploratory(ev *Evaluation) {
	exact := 0
	union := make(map[int]bool)
	for _, r := range ev.Results {
		union[r.ItemID] = true
		if r.Match == compare.MatchExact {
			exact++
		}
	}
	if len(union) > 0 {
		ev.Score = float64(exact) / float64(len(union))
	}
}

// dedupIDs drops repeated ids, keeping first-occurrence order. Judgments
// assembled from free text can name the same item twice under different
// phrasings.
func dedupIDs(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// probeCoverage returns the fraction of the item's example cues present,
// case-insensitively, in the concatenated trainee turns, along with the
// cues found.
func probeCoverage(item catalog.Item, turns []interview.Turn) (float64, []string) {
	if len(item.ExampleCues) == 0 {
		return 0, nil
	}

	var b strings.Builder
	for _, t := range turns {
		if t.Speaker == interview.SpeakerTrainee {
			b.WriteString(strings.ToLower(t.Text))
			b.WriteString("\n")
		}
	}
	questions := b.String()

	var found []string
	for _, cue := range item.ExampleCues {
		if strings.Contains(questions, strings.ToLower(cue)) {
			found = append(found, cue)
		}
	}
	return float64(len(found)) / float64(len(item.ExampleCues)), found
}
