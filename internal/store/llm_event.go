package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// AppendLLMRequest records one LLM request event.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events (id, provider, model, purpose, latency_ms, success, input_tokens, output_tokens, error_message)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), data.Provider, data.Model, data.Purpose,
		data.LatencyMs, data.Success, data.InputTokens, data.OutputTokens, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// ListLLMRequests returns events newest first.
func (s *Store) ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, latency_ms, success, input_tokens, output_tokens, error_message, created_at
         FROM llm_events
         ORDER BY created_at DESC, id
         LIMIT ? OFFSET ?`,
		limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		if err := rows.Scan(
			&e.ID, &e.Provider, &e.Model, &e.Purpose,
			&e.LatencyMs, &e.Success, &e.InputTokens, &e.OutputTokens,
			&e.ErrorMessage, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
