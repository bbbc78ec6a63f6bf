package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndListLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "patient-turn", LatencyMs: 420, Success: true, InputTokens: 900, OutputTokens: 60},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "patient-turn", LatencyMs: 1800, Success: false, ErrorMessage: "rate limited"},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "interview-analysis", LatencyMs: 950, Success: true, InputTokens: 2400, OutputTokens: 310},
	}
	for _, e := range events {
		if err := s.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for _, e := range got {
		if e.ID == "" {
			t.Error("event missing ID")
		}
		if e.CreatedAt.IsZero() {
			t.Error("event missing CreatedAt")
		}
	}

	limited, err := s.ListLLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(limited))
	}
}

func TestSaveAndListAttempts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := &Attempt{
		SessionID:     "9e2b41c2-7a1f-4a53-9c7e-0a4b6f8d1c22",
		Mode:          "guided",
		AssignedItems: []int{5},
		JudgedItems:   []int{5},
		Score:         0.85,
		Outcome:       "exact",
		TurnCount:     12,
	}
	if err := s.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := s.ListAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].Mode != "guided" || got[0].Score != 0.85 || got[0].TurnCount != 12 {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
	if len(got[0].AssignedItems) != 1 || got[0].AssignedItems[0] != 5 {
		t.Errorf("assigned items mismatch: %v", got[0].AssignedItems)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	attempts := []*Attempt{
		{SessionID: "s1", Mode: "guided", AssignedItems: []int{5}, JudgedItems: []int{5}, Score: 1.0, Outcome: "exact", TurnCount: 8},
		{SessionID: "s2", Mode: "guided", AssignedItems: []int{7}, JudgedItems: []int{8}, Score: 0.5, Outcome: "partial", TurnCount: 10},
		{SessionID: "s3", Mode: "exploratory", AssignedItems: []int{13, 16}, JudgedItems: []int{13}, Score: 0.5, Outcome: "partial", TurnCount: 14},
	}
	for _, a := range attempts {
		if err := s.SaveAttempt(ctx, a); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if diff := stats.MeanScore - (2.0 / 3.0); diff > 0.001 || diff < -0.001 {
		t.Errorf("unexpected mean score: %f", stats.MeanScore)
	}
	guided := stats.ByMode["guided"]
	if guided.Count != 2 || guided.MeanScore != 0.75 {
		t.Errorf("unexpected guided stats: %+v", guided)
	}
	if stats.ByMode["exploratory"].Count != 1 {
		t.Errorf("unexpected exploratory stats: %+v", stats.ByMode["exploratory"])
	}
}

func TestStatsEmpty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 0 || stats.MeanScore != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if len(stats.ByMode) != 0 {
		t.Errorf("expected no mode stats, got %+v", stats.ByMode)
	}
}
