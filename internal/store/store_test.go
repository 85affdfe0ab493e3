package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleEvent(purpose string, ok bool) LLMEventData {
	return LLMEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      purpose,
		InputTokens:  100,
		OutputTokens: 40,
		LatencyMs:    12,
		Success:      ok,
		RequestBody:  "[user]\nhello",
		ResponseBody: `{"ok":true}`,
	}
}

func TestStore_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, sampleEvent("rubric-calibration", false)); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Purpose != "rubric-calibration" {
		t.Errorf("expected newest event first, got %q", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("expected failed event to round-trip Success=false")
	}
	if events[1].Success != true {
		t.Error("expected successful event to round-trip Success=true")
	}
	if events[0].RunID != s.RunID() {
		t.Errorf("expected run ID %q, got %q", s.RunID(), events[0].RunID)
	}
	if events[0].InputTokens != 100 || events[0].OutputTokens != 40 {
		t.Errorf("token counts did not round-trip: %+v", events[0])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestStore_QueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, sampleEvent("rubric-calibration", true)); err != nil {
		t.Fatal(err)
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "rubric-calibration"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("expected 1 calibration event, got %d", len(byPurpose))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(limited))
	}

	byRun, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: s.RunID()})
	if err != nil {
		t.Fatal(err)
	}
	if len(byRun) != 4 {
		t.Fatalf("expected 4 events for this run, got %d", len(byRun))
	}

	otherRun, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "not-a-run"})
	if err != nil {
		t.Fatal(err)
	}
	if len(otherRun) != 0 {
		t.Fatalf("expected 0 events for unknown run, got %d", len(otherRun))
	}
}

func TestStore_GetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)); err != nil {
		t.Fatal(err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.RequestBody != "[user]\nhello" {
		t.Errorf("request body did not round-trip: %q", e.RequestBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestStore_UsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.AppendLLMRequest(ctx, sampleEvent("question-gen", true)); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, sampleEvent("rubric-calibration", true)); err != nil {
		t.Fatal(err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "question-gen" {
			if u.Calls != 2 {
				t.Errorf("expected 2 question-gen calls, got %d", u.Calls)
			}
			if u.InputTokens != 200 || u.OutputTokens != 80 {
				t.Errorf("unexpected token sums: %+v", u)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byModel) != 1 {
		t.Fatalf("expected 1 model row, got %d", len(byModel))
	}
	if byModel[0].Model != "mock" || byModel[0].Calls != 3 {
		t.Errorf("unexpected model usage: %+v", byModel[0])
	}
}

func TestStore_RunIDsDifferAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	id1 := s1.RunID()
	_ = s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	if id1 == s2.RunID() {
		t.Fatal("expected distinct run IDs across opens")
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("QUIZFORGE_DB", custom)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != custom {
		t.Fatalf("expected %q, got %q", custom, p)
	}
	// Parent dir is created so a subsequent Open succeeds.
	if _, err := os.Stat(filepath.Dir(custom)); err != nil {
		t.Fatalf("expected parent dir to exist: %v", err)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", "")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dataHome, "quizforge", "quizforge.db")
	if p != want {
		t.Fatalf("expected %q, got %q", want, p)
	}
}
