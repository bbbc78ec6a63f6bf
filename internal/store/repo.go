package store

import (
	"context"
	"time"
)

// QueryOpts controls pagination for list queries. A zero Limit means no limit.
type QueryOpts struct {
	Limit  int
	Offset int
}

// LLMRequestEventData is the metadata recorded for a single LLM request.
// Prompt and completion bodies are deliberately absent.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// LLMRequestEvent is a persisted LLM request event.
type LLMRequestEvent struct {
	ID string
	LLMRequestEventData
	CreatedAt time.Time
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}

// Attempt is the durable record of one completed training interview,
// including the trainee's judgment and the computed score.
type Attempt struct {
	ID            string
	SessionID     string
	Mode          string
	AssignedItems []int
	JudgedItems   []int
	Score         float64
	Outcome       string
	TurnCount     int
	CreatedAt     time.Time
}

// ModeStats aggregates attempts for a single training mode.
type ModeStats struct {
	Count     int
	MeanScore float64
}

// AttemptStats summarizes a trainee's history across all attempts.
type AttemptStats struct {
	Total     int
	MeanScore float64
	ByMode    map[string]ModeStats
}

// AttemptRepo persists and queries training attempts.
type AttemptRepo interface {
	SaveAttempt(ctx context.Context, a *Attempt) error
	ListAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error)
	Stats(ctx context.Context) (*AttemptStats, error)
}

var (
	_ EventRepo   = (*Store)(nil)
	_ AttemptRepo = (*Store)(nil)
)
