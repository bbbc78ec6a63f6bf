package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/taldlab/internal/persona"
)

// Render produces the trainee-facing text of the report. Identical reports
// render to identical bytes.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Interview report — session %s\n", r.SessionID)
	fmt.Fprintf(&b, "Mode: %s\n", r.Mode)
	fmt.Fprintf(&b, "Turns: %d\n", r.TurnCount)
	fmt.Fprintf(&b, "Score: %.2f\n", r.Score)

	if r.Mode == persona.ModeGuided {
		fmt.Fprintf(&b, "Judgment: %s (outcome %.2f, interview process %.2f)\n",
			r.Outcome, r.OutcomeScore, r.ProcessScore)
		if len(r.ProbedCues) > 0 {
			fmt.Fprintf(&b, "Probing touched on: %s\n", strings.Join(r.ProbedCues, "; "))
		}
	}

	b.WriteString("\nItems\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "\n[%d] %s (%s) — %s",
			item.ItemID, item.Name, item.Category, item.Match)
		if item.Confidence > 0 {
			fmt.Fprintf(&b, " (%.1f)", item.Confidence)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n", item.Rationale)
		fmt.Fprintf(&b, "  What it is: %s\n", item.Description)
		fmt.Fprintf(&b, "  How to spot it: %s\n", item.Criteria)
		if item.Example != "" {
			fmt.Fprintf(&b, "  Example: %s\n", item.Example)
		}
	}

	if len(r.MissedItems) > 0 {
		fmt.Fprintf(&b, "\nMissed: %s\n", joinIDs(r.MissedItems))
	}
	if len(r.FalsePositiveItems) > 0 {
		fmt.Fprintf(&b, "False positives: %s\n", joinIDs(r.FalsePositiveItems))
	}

	if r.Commentary != nil {
		b.WriteString("\nClinical commentary\n")
		fmt.Fprintf(&b, "  %s\n", r.Commentary.Summary)
		for _, s := range r.Commentary.Strengths {
			fmt.Fprintf(&b, "  + %s\n", s)
		}
		for _, s := range r.Commentary.Improvements {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	return b.String()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
