package llm

import "context"

// Purpose labels recorded with each LLM request event. They let the stats
// command split token spend between live interview turns and report
// commentary.
const (
	PurposePatientTurn = "patient-turn"
	PurposeAnalysis    = "interview-analysis"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with what this generation is for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, defaulting to "unknown" for calls
// that reach the provider outside a labeled path.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
