package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/readiq/internal/assessment"
	"github.com/abhisek/readiq/internal/export"
	"github.com/abhisek/readiq/internal/llm"
	"github.com/abhisek/readiq/internal/quiz"
	"github.com/abhisek/readiq/internal/store"
)

// Handlers holds the request handlers and their collaborators.
type Handlers struct {
	Quiz    *quiz.Service
	Results store.ResultRepo
	Model   assessment.Config
	Log     *zap.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(q *quiz.Service, results store.ResultRepo, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		Quiz:    q,
		Results: results,
		Model:   assessment.DefaultConfig(),
		Log:     log,
	}
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type chatRequest struct {
	SessionID string        `json:"session_id"`
	Messages  []llm.Message `json:"messages" binding:"required"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Chat proxies one conversation turn to the LLM.
func (h *Handlers) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.Quiz.Respond(c.Request.Context(), quiz.TurnInput{
		SessionID: req.SessionID,
		Messages:  req.Messages,
	})
	if err != nil {
		h.Log.Error("chat turn failed", zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{SessionID: req.SessionID, Reply: reply})
}

type completeRequest struct {
	SessionID string        `json:"session_id"`
	Messages  []llm.Message `json:"messages" binding:"required"`
	Consent   bool          `json:"consent"`
}

type completeResponse struct {
	SessionID      string         `json:"session_id"`
	Scored         bool           `json:"scored"`
	Persisted      bool           `json:"persisted"`
	Scores         map[string]int `json:"scores,omitempty"`
	ReadinessLevel int            `json:"readiness_level,omitempty"`
	ReadinessTitle string         `json:"readiness_title,omitempty"`
}

// Complete finalizes a conversation: scores it and, with consent,
// persists the record. Persistence problems never fail the response.
func (h *Handlers) Complete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Quiz.Finalize(c.Request.Context(), quiz.CompleteInput{
		SessionID: req.SessionID,
		Messages:  req.Messages,
		ClientID:  c.ClientIP(),
		Consent:   req.Consent,
	})
	if err != nil {
		h.Log.Error("quiz scoring failed", zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "scoring unavailable"})
		return
	}

	out := completeResponse{
		SessionID: res.Record.SessionID,
		Scored:    res.Scored,
		Persisted: res.Persisted,
	}
	if res.Scored {
		out.Scores = make(map[string]int, assessment.NumPillars)
		for p, spec := range h.Model.Pillars {
			out.Scores[spec.Name] = res.Record.Scores[p]
		}
		out.ReadinessLevel = res.Record.ReadinessLevel
		out.ReadinessTitle = res.Record.ReadinessTitle
	}
	c.JSON(http.StatusOK, out)
}

// Report returns the aggregate pattern report over all stored records.
func (h *Handlers) Report(c *gin.Context) {
	records, err := h.Results.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list results failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, assessment.Summarize(h.Model, records))
}

// ExportCSV streams all stored records as CSV.
func (h *Handlers) ExportCSV(c *gin.Context) {
	records, err := h.Results.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list results failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="results.csv"`)
	if err := export.WriteCSV(c.Writer, records); err != nil {
		h.Log.Error("csv export failed", zap.Error(err))
	}
}
