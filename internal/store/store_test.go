package store

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/readiq/internal/assessment"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(sessionID string, synthetic bool) assessment.Record {
	return assessment.Record{
		SessionID: sessionID,
		Timestamp: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Scores: [assessment.NumPillars]int{
			assessment.Numeracy:      7,
			assessment.Reading:       3,
			assessment.Computer:      9,
			assessment.Logic:         5,
			assessment.Communication: 4,
			assessment.Mindset:       6,
		},
		ReadinessLevel: 3,
		ReadinessTitle: "On Track",
		ClientHash:     "abc123",
		Consent:        true,
		Synthetic:      synthetic,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful against file-backed stores.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestInsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	want := testRecord("sess-1", false)
	if err := repo.Insert(ctx, want); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got[0].Timestamp, want.Timestamp)
	}
	got[0].Timestamp = want.Timestamp
	if got[0] != want {
		t.Errorf("record = %+v, want %+v", got[0], want)
	}
}

func TestInsertRejectsDuplicateSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	rec := testRecord("sess-dup", false)
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.Insert(ctx, rec); err == nil {
		t.Fatal("expected unique constraint error on duplicate session id")
	}
}

func TestBulkInsertContinuesPastFailures(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	recs := []assessment.Record{
		testRecord("bulk-1", true),
		testRecord("bulk-1", true), // duplicate, must not stop the run
		testRecord("bulk-2", true),
	}
	inserted, err := repo.BulkInsert(ctx, recs)
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}
	if err == nil {
		t.Error("expected joined error reporting the duplicate")
	}

	n, cErr := repo.Count(ctx)
	if cErr != nil {
		t.Fatalf("count: %v", cErr)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestDeleteSyntheticLeavesLiveRows(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	if err := repo.Insert(ctx, testRecord("live-1", false)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Insert(ctx, testRecord("synth-1", true)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Insert(ctx, testRecord("synth-2", true)); err != nil {
		t.Fatal(err)
	}

	removed, err := repo.DeleteSynthetic(ctx)
	if err != nil {
		t.Fatalf("delete synthetic: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].SessionID != "live-1" {
		t.Errorf("remaining rows = %+v, want only live-1", got)
	}
}

func TestGeneratedBatchRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	cfg := assessment.DefaultConfig()
	synth := assessment.NewSynthesizer(cfg, rand.New(rand.NewPCG(11, 12)))
	batch := synth.GenerateBatch(50)

	inserted, err := repo.BulkInsert(ctx, batch)
	if err != nil || inserted != 50 {
		t.Fatalf("bulk insert = %d, %v", inserted, err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 50 {
		t.Fatalf("len = %d, want 50", len(got))
	}

	byID := make(map[string]assessment.Record, len(got))
	for _, rec := range got {
		byID[rec.SessionID] = rec
	}
	for _, want := range batch {
		stored, ok := byID[want.SessionID]
		if !ok {
			t.Fatalf("session %s missing after round trip", want.SessionID)
		}
		if stored.Scores != want.Scores {
			t.Errorf("scores = %v, want %v", stored.Scores, want.Scores)
		}
		if stored.ReadinessLevel != want.ReadinessLevel || stored.ReadinessTitle != want.ReadinessTitle {
			t.Errorf("readiness = %d %q, want %d %q",
				stored.ReadinessLevel, stored.ReadinessTitle,
				want.ReadinessLevel, want.ReadinessTitle)
		}
	}
}
