package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SaveAttempt persists a completed attempt. When a.ID is empty a new UUID is
// assigned and written back to the struct.
func (s *Store) SaveAttempt(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	assigned, err := json.Marshal(a.AssignedItems)
	if err != nil {
		return fmt.Errorf("marshal assigned items: %w", err)
	}
	judged, err := json.Marshal(a.JudgedItems)
	if err != nil {
		return fmt.Errorf("marshal judged items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, session_id, mode, assigned_items, judged_items, score, outcome, turn_count)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.Mode, string(assigned), string(judged),
		a.Score, a.Outcome, a.TurnCount,
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// ListAttempts returns attempts newest first.
func (s *Store) ListAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, mode, assigned_items, judged_items, score, outcome, turn_count, created_at
         FROM attempts
         ORDER BY created_at DESC, id
         LIMIT ? OFFSET ?`,
		limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var assigned, judged string
		if err := rows.Scan(
			&a.ID, &a.SessionID, &a.Mode, &assigned, &judged,
			&a.Score, &a.Outcome, &a.TurnCount, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(assigned), &a.AssignedItems); err != nil {
			return nil, fmt.Errorf("unmarshal assigned items: %w", err)
		}
		if err := json.Unmarshal([]byte(judged), &a.JudgedItems); err != nil {
			return nil, fmt.Errorf("unmarshal judged items: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Stats aggregates attempt counts and mean scores, overall and per mode.
func (s *Store) Stats(ctx context.Context) (*AttemptStats, error) {
	stats := &AttemptStats{ByMode: make(map[string]ModeStats)}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(score), 0) FROM attempts`,
	).Scan(&stats.Total, &stats.MeanScore)
	if err != nil {
		return nil, fmt.Errorf("attempt totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, COUNT(*), AVG(score) FROM attempts GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("attempt stats by mode: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mode string
		var ms ModeStats
		if err := rows.Scan(&mode, &ms.Count, &ms.MeanScore); err != nil {
			return nil, fmt.Errorf("scan mode stats: %w", err)
		}
		stats.ByMode[mode] = ms
	}
	return stats, rows.Err()
}
