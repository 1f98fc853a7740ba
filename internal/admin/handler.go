package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nam-conference/backend/internal/models"
	"github.com/nam-conference/backend/internal/survey"
	"github.com/nam-conference/backend/pkg/response"
)

// recentLimit bounds the recent-responses list.
const recentLimit = 5

// QuestionDetail is one entry in the response detail view. Answer is nil
// (JSON null) for unanswered questions.
type QuestionDetail struct {
	QuestionNumber int                 `json:"questionNumber"`
	QuestionText   string              `json:"questionText"`
	QuestionType   survey.QuestionType `json:"questionType"`
	Answer         survey.Answer       `json:"answer"`
}

// ResponseDetail is the full structured view of one submission: all 19
// questions in ordinal order regardless of which were answered.
type ResponseDetail struct {
	ID          uuid.UUID        `json:"id"`
	SubmittedAt string           `json:"submittedAt"`
	Questions   []QuestionDetail `json:"questions"`
}

// Store provides the dashboard queries.
type Store interface {
	Metrics(ctx context.Context) (completed, inProgress int, err error)
	RecentSubmitted(ctx context.Context, limit int) ([]models.ResponseSummary, error)
	GetResponse(ctx context.Context, id uuid.UUID) (*models.SurveyResponse, error)
}

// Handler handles admin dashboard endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates an admin handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// GetMetrics handles GET /api/admin/metrics.
func (h *Handler) GetMetrics(c *gin.Context) {
	completed, inProgress, err := h.store.Metrics(c.Request.Context())
	if err != nil {
		h.logger.Error("metrics query failed", zap.Error(err))
		response.Internal(c, "failed to load metrics")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"completed":  completed,
		"inProgress": inProgress,
	})
}

// GetRecentResponses handles GET /api/admin/recent-responses.
func (h *Handler) GetRecentResponses(c *gin.Context) {
	recent, err := h.store.RecentSubmitted(c.Request.Context(), recentLimit)
	if err != nil {
		h.logger.Error("recent responses query failed", zap.Error(err))
		response.Internal(c, "failed to load recent responses")
		return
	}
	list := make([]gin.H, 0, len(recent))
	for _, s := range recent {
		list = append(list, gin.H{
			"id":          s.ID,
			"submittedAt": s.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"responses": list})
}

// GetResponseDetail handles GET /api/admin/responses/:id.
func (h *Handler) GetResponseDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid response id")
		return
	}
	resp, err := h.store.GetResponse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "response not found: "+id.String())
			return
		}
		h.logger.Error("response lookup failed", zap.Error(err), zap.String("response_id", id.String()))
		response.Internal(c, "failed to load response")
		return
	}
	c.JSON(http.StatusOK, assembleDetail(resp))
}

// assembleDetail runs the answer extractor over the full question registry
// for one stored response.
func assembleDetail(resp *models.SurveyResponse) ResponseDetail {
	metas := survey.Questions()
	qs := make([]QuestionDetail, 0, len(metas))
	for _, meta := range metas {
		qs = append(qs, QuestionDetail{
			QuestionNumber: meta.Number,
			QuestionText:   meta.Text,
			QuestionType:   meta.Type,
			Answer:         survey.ExtractAnswer(meta, resp),
		})
	}
	return ResponseDetail{
		ID:          resp.ID,
		SubmittedAt: resp.CreatedAt.UTC().Format(time.RFC3339),
		Questions:   qs,
	}
}
