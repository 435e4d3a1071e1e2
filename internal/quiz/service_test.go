package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/readiq/internal/assessment"
	"github.com/abhisek/readiq/internal/llm"
)

// fakeResultRepo implements store.ResultRepo in memory with failure
// injection.
type fakeResultRepo struct {
	records   []assessment.Record
	insertErr error
}

func (f *fakeResultRepo) Insert(_ context.Context, rec assessment.Record) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeResultRepo) BulkInsert(ctx context.Context, recs []assessment.Record) (int, error) {
	n := 0
	for _, rec := range recs {
		if err := f.Insert(ctx, rec); err == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeResultRepo) List(context.Context) ([]assessment.Record, error) {
	return f.records, nil
}

func (f *fakeResultRepo) Count(context.Context) (int, error) {
	return len(f.records), nil
}

func (f *fakeResultRepo) DeleteSynthetic(context.Context) (int64, error) {
	return 0, nil
}

func scoringJSON() json.RawMessage {
	return json.RawMessage(`{"numeracy":8,"reading":4,"computer":6,"logic":5,"communication":3,"mindset":6,"readiness_level":2}`)
}

func TestRespondReturnsReply(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"What kind of work interests you?"`)},
	)
	svc := NewService(mock, nil, DefaultConfig(), nil)

	reply, err := svc.Respond(context.Background(), TurnInput{
		SessionID: "s1",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Hi"}},
	})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "What kind of work interests you?" {
		t.Errorf("reply = %q", reply)
	}
}

func TestRespondPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, nil, DefaultConfig(), nil)

	_, err := svc.Respond(context.Background(), TurnInput{})
	if err == nil {
		t.Fatal("expected error from failed turn")
	}
}

func TestFinalizePersistsWithConsent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: scoringJSON()})
	repo := &fakeResultRepo{}
	svc := NewService(mock, repo, DefaultConfig(), nil)

	res, err := svc.Finalize(context.Background(), CompleteInput{
		SessionID: "sess-42",
		ClientID:  "10.0.0.7",
		Consent:   true,
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !res.Scored || !res.Persisted {
		t.Fatalf("result = %+v, want scored and persisted", res)
	}
	if len(repo.records) != 1 {
		t.Fatalf("stored records = %d, want 1", len(repo.records))
	}

	rec := repo.records[0]
	if rec.SessionID != "sess-42" {
		t.Errorf("session = %q", rec.SessionID)
	}
	if rec.Scores[assessment.Numeracy] != 8 || rec.Scores[assessment.Mindset] != 6 {
		t.Errorf("scores = %v", rec.Scores)
	}
	if rec.ReadinessLevel != 2 || rec.ReadinessTitle != "Nearly Ready" {
		t.Errorf("readiness = %d %q", rec.ReadinessLevel, rec.ReadinessTitle)
	}
	if rec.ClientHash == "" || rec.ClientHash == "10.0.0.7" {
		t.Errorf("client hash = %q, want one-way hash", rec.ClientHash)
	}
	if !rec.Consent {
		t.Error("consent flag not preserved")
	}
	if rec.Synthetic {
		t.Error("live record marked synthetic")
	}
}

func TestFinalizeWithoutConsentSkipsPersistence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: scoringJSON()})
	repo := &fakeResultRepo{}
	svc := NewService(mock, repo, DefaultConfig(), nil)

	res, err := svc.Finalize(context.Background(), CompleteInput{Consent: false})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !res.Scored || res.Persisted {
		t.Fatalf("result = %+v, want scored but not persisted", res)
	}
	if len(repo.records) != 0 {
		t.Errorf("stored records = %d, want 0", len(repo.records))
	}
}

func TestFinalizeStorageFailureStillReturnsResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: scoringJSON()})
	repo := &fakeResultRepo{insertErr: errors.New("disk full")}
	svc := NewService(mock, repo, DefaultConfig(), nil)

	res, err := svc.Finalize(context.Background(), CompleteInput{Consent: true})
	if err != nil {
		t.Fatalf("storage failure must not surface: %v", err)
	}
	if !res.Scored {
		t.Error("result lost on storage failure")
	}
	if res.Persisted {
		t.Error("Persisted = true despite insert error")
	}
}

func TestFinalizeMalformedPayloadSkipsPersistence(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`this is not json`)},
	)
	repo := &fakeResultRepo{}
	svc := NewService(mock, repo, DefaultConfig(), nil)

	res, err := svc.Finalize(context.Background(), CompleteInput{Consent: true})
	if err != nil {
		t.Fatalf("malformed payload must not fail the request: %v", err)
	}
	if res.Scored || res.Persisted {
		t.Fatalf("result = %+v, want unscored and unpersisted", res)
	}
	if len(repo.records) != 0 {
		t.Errorf("stored records = %d, want 0", len(repo.records))
	}
}

func TestFinalizeClampsOutOfRangeScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"numeracy":99,"reading":-3,"computer":5,"logic":4,"communication":2,"mindset":3,"readiness_level":9}`),
	})
	svc := NewService(mock, nil, DefaultConfig(), nil)

	res, err := svc.Finalize(context.Background(), CompleteInput{})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	rec := res.Record
	if rec.Scores[assessment.Numeracy] != 10 {
		t.Errorf("numeracy = %d, want clamped to 10", rec.Scores[assessment.Numeracy])
	}
	if rec.Scores[assessment.Reading] != 0 {
		t.Errorf("reading = %d, want clamped to 0", rec.Scores[assessment.Reading])
	}
	if rec.ReadinessLevel != 5 {
		t.Errorf("level = %d, want clamped to 5", rec.ReadinessLevel)
	}
	if rec.SessionID == "" {
		t.Error("expected generated session id")
	}
}
