package quiz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/readiq/internal/assessment"
	"github.com/abhisek/readiq/internal/llm"
	"github.com/abhisek/readiq/internal/store"
)

// Service runs the live chat assessment: it proxies conversation turns
// to the LLM and, on completion, extracts a structured result and
// persists it when the candidate consented.
type Service struct {
	provider llm.Provider
	results  store.ResultRepo
	model    assessment.Config
	cfg      Config
	log      *zap.Logger
}

// NewService creates a quiz service. results may be nil, in which case
// completed quizzes are never persisted.
func NewService(provider llm.Provider, results store.ResultRepo, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		results:  results,
		model:    assessment.DefaultConfig(),
		cfg:      cfg,
		log:      log,
	}
}

// TurnInput is one conversation step from the client.
type TurnInput struct {
	SessionID string
	Messages  []llm.Message
}

// Respond proxies one conversation turn and returns the interviewer's
// reply.
func (s *Service) Respond(ctx context.Context, in TurnInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "quiz-turn")

	resp, err := s.provider.Complete(ctx, llm.Request{
		System:      interviewSystemPrompt,
		Messages:    in.Messages,
		MaxTokens:   s.cfg.MaxTurnTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("quiz turn: %w", err)
	}

	var reply string
	if err := json.Unmarshal(resp.Content, &reply); err != nil {
		// Providers return raw text when no schema is set.
		reply = string(resp.Content)
	}
	return reply, nil
}

// CompleteInput finalizes one conversation.
type CompleteInput struct {
	SessionID string
	Messages  []llm.Message

	// ClientID is the raw client identity; only its hash is stored.
	ClientID string

	// Consent gates persistence. The result is returned either way.
	Consent bool
}

// Result is the outcome of a finalized quiz. Scored is false when the
// model's payload could not be interpreted; Persisted is true only when
// the record reached storage.
type Result struct {
	Scored    bool
	Persisted bool
	Record    assessment.Record
}

// scoringOutput mirrors ScoringSchema.
type scoringOutput struct {
	Numeracy       int `json:"numeracy"`
	Reading        int `json:"reading"`
	Computer       int `json:"computer"`
	Logic          int `json:"logic"`
	Communication  int `json:"communication"`
	Mindset        int `json:"mindset"`
	ReadinessLevel int `json:"readiness_level"`
}

// Finalize scores the transcript and persists the record when consent
// allows. Persistence problems never fail the call: a malformed scoring
// payload means there is nothing to store, and a storage error is
// logged while the result still goes back to the caller.
func (s *Service) Finalize(ctx context.Context, in CompleteInput) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "quiz-score")

	resp, err := s.provider.Complete(ctx, llm.Request{
		System:    scoreSystemPrompt,
		Messages:  append(in.Messages, llm.Message{Role: llm.RoleUser, Content: "Score this interview now."}),
		Schema:    ScoringSchema,
		MaxTokens: s.cfg.MaxScoreTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz scoring: %w", err)
	}

	var out scoringOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		s.log.Warn("unparsable scoring payload, skipping persistence",
			zap.String("session_id", in.SessionID), zap.Error(err))
		return &Result{}, nil
	}

	rec := s.buildRecord(in, out)

	res := &Result{Scored: true, Record: rec}
	if !in.Consent || s.results == nil {
		return res, nil
	}

	if err := s.results.Insert(ctx, rec); err != nil {
		// The candidate still gets their result.
		s.log.Error("persist quiz result failed",
			zap.String("session_id", rec.SessionID), zap.Error(err))
		return res, nil
	}
	res.Persisted = true
	return res, nil
}

func (s *Service) buildRecord(in CompleteInput, out scoringOutput) assessment.Record {
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var scores [assessment.NumPillars]int
	scores[assessment.Numeracy] = out.Numeracy
	scores[assessment.Reading] = out.Reading
	scores[assessment.Computer] = out.Computer
	scores[assessment.Logic] = out.Logic
	scores[assessment.Communication] = out.Communication
	scores[assessment.Mindset] = out.Mindset
	for p, spec := range s.model.Pillars {
		scores[p] = clamp(scores[p], 0, spec.MaxScore)
	}

	level := clamp(out.ReadinessLevel, 1, len(s.model.Tiers))
	title := s.model.Tiers[level-1].Title

	return assessment.Record{
		SessionID:      sessionID,
		Timestamp:      time.Now().UTC(),
		Scores:         scores,
		ReadinessLevel: level,
		ReadinessTitle: title,
		ClientHash:     hashClient(in.ClientID),
		Consent:        in.Consent,
	}
}

// hashClient one-way hashes the client identity; an empty identity
// stays empty.
func hashClient(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
