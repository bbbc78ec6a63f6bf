package evaluate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/abhisek/taldlab/internal/catalog"
	"github.com/abhisek/taldlab/internal/compare"
	"github.com/abhisek/taldlab/internal/interview"
	"github.com/abhisek/taldlab/internal/llm"
	"github.com/abhisek/taldlab/internal/persona"
)

func testEngine(t *testing.T) (*Engine, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(c), c
}

func buildSession(t *testing.T, c *catalog.Catalog, mode persona.Mode, itemIDs []int, replies ...llm.MockResponse) *interview.Session {
	t.Helper()
	p, err := persona.Build(c, persona.Spec{Mode: mode, ItemIDs: itemIDs})
	if err != nil {
		t.Fatalf("build persona: %v", err)
	}
	return interview.NewSession(p, llm.NewMockProvider(replies...))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvaluateRequiresClosedSession(t *testing.T) {
	e, c := testEngine(t)
	s := buildSession(t, c, persona.ModeGuided, []int{4})

	_, err := e.Evaluate(s)
	var stateErr *interview.InvalidStateError
	if err == nil || !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}

	if err := s.Conclude(); err != nil {
		t.Fatalf("conclude: %v", err)
	}
	if _, err := e.Evaluate(s); !errors.As(err, &stateErr) {
		t.Fatalf("awaiting_judgment must also be rejected, got %v", err)
	}
}

func TestEvaluateGuidedTangentialityInterview(t *testing.T) {
	e, c := testEngine(t)

	// Three-turn interview probing for tangentiality, then the correct call.
	s := buildSession(t, c, persona.ModeGuided, []int{4},
		llm.PatientReply("The ward is fine, the beds here, my old bed at home was bought in spring."),
		llm.PatientReply("Sleep, well, the mattress was on sale, we drove out on a Saturday."),
		llm.PatientReply("The shop had many floors. There was a cafe too."),
	)
	ctx := context.Background()

	questions := []string{
		"How do you feel today?",
		"How is your sleep at the moment?",
		"Please answer my question: did you sleep last night?",
	}
	for _, q := range questions {
		if _, err := s.SubmitTraineeUtterance(ctx, q); err != nil {
			t.Fatalf("submit %q: %v", q, err)
		}
	}
	if err := s.SubmitJudgment(interview.GuidedJudgment{ItemID: 4, Rationale: "answers kept sliding off the question"}); err != nil {
		t.Fatalf("judgment: %v", err)
	}

	ev, err := e.Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if ev.Outcome != compare.MatchExact || ev.OutcomeScore != 1.0 {
		t.Errorf("expected exact outcome, got %s (%f)", ev.Outcome, ev.OutcomeScore)
	}
	// Questions cover "how do you feel", "sleep" and "answer my question":
	// 3 of the 4 example cues.
	if !almostEqual(ev.ProcessScore, 0.75) {
		t.Errorf("expected process score 0.75, got %f", ev.ProcessScore)
	}
	want := 0.70*1.0 + 0.30*0.75
	if !almostEqual(ev.Score, want) {
		t.Errorf("expected score %f, got %f", want, ev.Score)
	}
	if ev.Score < 0.7 {
		t.Errorf("correct call must score at least 0.7, got %f", ev.Score)
	}
	if len(ev.ProbedCues) != 3 {
		t.Errorf("unexpected probed cues: %v", ev.ProbedCues)
	}
	if ev.TurnCount != 6 {
		t.Errorf("expected 6 turns, got %d", ev.TurnCount)
	}
	if len(ev.MissedItems) != 0 || len(ev.FalsePositiveItems) != 0 {
		t.Errorf("unexpected miss/false-positive lists: %v %v", ev.MissedItems, ev.FalsePositiveItems)
	}
}

func TestEvaluateGuidedPartialCredit(t *testing.T) {
	e, c := testEngine(t)

	// Rupture of Thought enacted, Loss of Thought judged: near miss.
	s := buildSession(t, c, persona.ModeGuided, []int{8})
	if err := s.SubmitJudgment(interview.GuidedJudgment{ItemID: 7}); err != nil {
		t.Fatalf("judgment: %v", err)
	}

	ev, err := e.Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Outcome != compare.MatchPartial || ev.OutcomeScore != 0.5 {
		t.Errorf("expected partial outcome 0.5, got %s (%f)", ev.Outcome, ev.OutcomeScore)
	}
	// No utterances were made, so process is zero.
	if !almostEqual(ev.Score, 0.35) {
		t.Errorf("expected score 0.35, got %f", ev.Score)
	}
}

func TestEvaluateGuidedWrongCall(t *testing.T) {
	e, c := testEngine(t)

	s := buildSession(t, c, persona.ModeGuided, []int{16})
	if err := s.SubmitJudgment(interview.GuidedJudgment{ItemID: 13}); err != nil {
		t.Fatalf("judgment: %v", err)
	}

	ev, err := e.Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Outcome != compare.MatchNone || ev.OutcomeScore != 0 {
		t.Errorf("expected none outcome, got %s (%f)", ev.Outcome, ev.OutcomeScore)
	}
	if len(ev.MissedItems) != 1 || ev.MissedItems[0] != 16 {
		t.Errorf("expected missed item 16, got %v", ev.MissedItems)
	}
	if len(ev.FalsePositiveItems) != 1 || ev.FalsePositiveItems[0] != 13 {
		t.Errorf("expected false positive 13, got %v", ev.FalsePositiveItems)
	}
}

func TestEvaluateExploratoryJaccard(t *testing.T) {
	e, c := testEngine(t)

	// Enacted {5, 13}, judged {5, 16}: union {5, 13, 16}, one exact.
	s := buildSession(t, c, persona.ModeExploratory, []int{5, 13})
	if err := s.SubmitJudgment(interview.ExploratoryJudgment{ItemIDs: []int{5, 16}}); err != nil {
		t.Fatalf("judgment: %v", err)
	}

	ev, err := e.Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !almostEqual(ev.Score, 1.0/3.0) {
		t.Errorf("expected score 1/3, got %f", ev.Score)
	}
	if len(ev.MissedItems) != 1 || ev.MissedItems[0] != 13 {
		t.Errorf("expected missed 13, got %v", ev.MissedItems)
	}
	if len(ev.FalsePositiveItems) != 1 || ev.FalsePositiveItems[0] != 16 {
		t.Errorf("expected false positive 16, got %v", ev.FalsePositiveItems)
	}
	if ev.Outcome != "" {
		t.Errorf("exploratory evaluation must not carry a guided outcome, got %s", ev.Outcome)
	}
}

func TestEvaluateExploratoryDuplicateIDsCollapse(t *testing.T) {
	e, c := testEngine(t)

	// Item 5 named twice (as happens when the trainee types both the item
	// name and one of its synonyms): scored and recorded once.
	s := buildSession(t, c, persona.ModeExploratory, []int{5, 13})
	if err := s.SubmitJudgment(interview.ExploratoryJudgment{ItemIDs: []int{5, 5, 13}}); err != nil {
		t.Fatalf("judgment: %v", err)
	}

	ev, err := e.Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(ev.JudgedItems) != 2 || ev.JudgedItems[0] != 5 || ev.JudgedItems[1] != 13 {
		t.Errorf("expected judged items [5 13], got %v", ev.JudgedItems)
	}
	if !almostEqual(ev.Score, 1.0) {
		t.Errorf("expected perfect score, got %f", ev.Score)
	}
	if len(ev.FalsePositiveItems) != 0 {
		t.Errorf("unexpected false positives: %v", ev.FalsePositiveItems)
	}
}

func TestEvaluateExploratoryAllCorrect(t *testing.T) {
	e, c := testEngine(t)

	s := buildSession(t, c, persona.ModeExploratory, []int{5, 13})
	if err := s.SubmitJudgment(interview.ExploratoryJudgment{ItemIDs: []int{13, 5}}); err != nil {
		t.Fatalf("judgment: %v", err)
	}

	ev, err := e.Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !almostEqual(ev.Score, 1.0) {
		t.Errorf("expected perfect score, got %f", ev.Score)
	}
	if len(ev.MissedItems) != 0 || len(ev.FalsePositiveItems) != 0 {
		t.Errorf("unexpected miss/false-positive lists: %v %v", ev.MissedItems, ev.FalsePositiveItems)
	}
}
