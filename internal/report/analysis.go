package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/taldlab/internal/interview"
	"github.com/abhisek/taldlab/internal/llm"
)

// Commentary is the structured clinical commentary on an interview.
type Commentary struct {
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

var commentarySchema = &llm.Schema{
	Name:        "interview-analysis",
	Description: "Clinical commentary on a training interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentences on the trainee's interview technique",
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"summary", "strengths", "improvements"},
	},
}

const (
	commentaryMaxTokens   = 1024
	commentaryTemperature = 0.3
)

// Commentator produces LLM commentary for a report. Failures leave the
// report usable without commentary.
type Commentator struct {
	provider llm.Provider
}

// NewCommentator returns a Commentator backed by the given provider.
func NewCommentator(p llm.Provider) *Commentator {
	return &Commentator{provider: p}
}

// Comment generates commentary for the report from the interview transcript
// and attaches it. The response is validated against the commentary schema
// before use.
func (c *Commentator) Comment(ctx context.Context, r *Report, transcript []interview.Turn) error {
	ctx = llm.WithPurpose(ctx, llm.PurposeAnalysis)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: "You are a senior psychiatrist supervising interview training. " +
			"Comment on the trainee's questioning technique: pacing, openness of questions, " +
			"whether elaboration was invited, and how well the phenomena were probed. " +
			"Address the trainee directly and stay concrete.",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: commentaryPrompt(r, transcript)},
		},
		Schema:      commentarySchema,
		MaxTokens:   commentaryMaxTokens,
		Temperature: commentaryTemperature,
	})
	if err != nil {
		return fmt.Errorf("generating commentary: %w", err)
	}

	var commentary Commentary
	if err := json.Unmarshal(resp.Content, &commentary); err != nil {
		return fmt.Errorf("decoding commentary: %w", err)
	}

	r.Commentary = &commentary
	return nil
}

func commentaryPrompt(r *Report, transcript []interview.Turn) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The trainee scored %.2f in %s mode over %d turns.\n",
		r.Score, r.Mode, r.TurnCount)
	for _, item := range r.Items {
		fmt.Fprintf(&b, "Item %d (%s): %s. %s\n", item.ItemID, item.Name, item.Match, item.Rationale)
	}

	b.WriteString("\nTranscript:\n")
	for _, t := range transcript {
		fmt.Fprintf(&b, "%s: %s\n", t.Speaker, t.Text)
	}
	return b.String()
}
