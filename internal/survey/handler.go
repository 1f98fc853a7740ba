package survey

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nam-conference/backend/internal/models"
	"github.com/nam-conference/backend/pkg/response"
)

// SubmitRequest is the body for POST /api/survey/submit. Every field is
// independently optional; shape and range constraints are enforced by the
// binding tags.
type SubmitRequest struct {
	Q1OverallRating *int    `json:"q1OverallRating" binding:"omitempty,min=1,max=5"`
	Q1Comment       *string `json:"q1Comment"`

	Q2ReturnIntent *int    `json:"q2ReturnIntent" binding:"omitempty,min=1,max=5"`
	Q2Comment      *string `json:"q2Comment"`

	Q3CoworkingEffectiveness *string `json:"q3CoworkingEffectiveness" binding:"omitempty,oneof=1 2 3 4 5 NA"`
	Q3Comment                *string `json:"q3Comment"`

	Q4ConnectionTypes []string `json:"q4ConnectionTypes"`
	Q4ConnectionOther *string  `json:"q4ConnectionOther"`

	Q5ConnectionDepth *int    `json:"q5ConnectionDepth" binding:"omitempty,min=1,max=5"`
	Q5Comment         *string `json:"q5Comment"`

	Q6LearningValue *int    `json:"q6LearningValue" binding:"omitempty,min=1,max=5"`
	Q6Comment       *string `json:"q6Comment"`

	Q7FutureTopics *string `json:"q7FutureTopics"`

	Q8SaturdayWorth *string `json:"q8SaturdayWorth" binding:"omitempty,oneof=1 2 3 4 5 NA"`
	Q8Comment       *string `json:"q8Comment"`

	Q9PreConferenceCommunication *int `json:"q9PreConferenceCommunication" binding:"omitempty,min=1,max=5"`

	Q10AccommodationsVenue *string `json:"q10AccommodationsVenue" binding:"omitempty,oneof=1 2 3 4 5 NA"`

	Q11SessionRankings map[string]int `json:"q11SessionRankings"`

	Q12ConferenceLength *string `json:"q12ConferenceLength" binding:"omitempty,oneof=too_short just_right too_long"`

	Q13ComparisonToPD *string `json:"q13ComparisonToPD" binding:"omitempty,oneof=1 2 3 4 5 NA"`

	Q14LikedMost          *string `json:"q14LikedMost"`
	Q15AdditionalFeedback *string `json:"q15AdditionalFeedback"`

	Q16Improvements *string `json:"q16Improvements"`
	Q16Comment      *string `json:"q16Comment"`

	Q17FeedbackConfidence []string `json:"q17FeedbackConfidence"`
	Q17FeedbackOther      *string  `json:"q17FeedbackOther"`

	Q18EmploymentStatus *string `json:"q18EmploymentStatus" binding:"omitempty,oneof=employee contractor client other"`

	Q19Name     *string `json:"q19Name"`
	Q19Location *string `json:"q19Location"`
}

// HasAnyAnswer reports whether at least one question group carries a value.
// Empty submissions are rejected before anything is persisted.
func (req *SubmitRequest) HasAnyAnswer() bool {
	for _, set := range []bool{
		req.Q1OverallRating != nil,
		req.Q1Comment != nil,
		req.Q2ReturnIntent != nil,
		req.Q2Comment != nil,
		req.Q3CoworkingEffectiveness != nil,
		req.Q3Comment != nil,
		len(req.Q4ConnectionTypes) > 0,
		req.Q4ConnectionOther != nil,
		req.Q5ConnectionDepth != nil,
		req.Q5Comment != nil,
		req.Q6LearningValue != nil,
		req.Q6Comment != nil,
		req.Q7FutureTopics != nil,
		req.Q8SaturdayWorth != nil,
		req.Q8Comment != nil,
		req.Q9PreConferenceCommunication != nil,
		req.Q10AccommodationsVenue != nil,
		len(req.Q11SessionRankings) > 0,
		req.Q12ConferenceLength != nil,
		req.Q13ComparisonToPD != nil,
		req.Q14LikedMost != nil,
		req.Q15AdditionalFeedback != nil,
		req.Q16Improvements != nil,
		req.Q16Comment != nil,
		len(req.Q17FeedbackConfidence) > 0,
		req.Q17FeedbackOther != nil,
		req.Q18EmploymentStatus != nil,
		req.Q19Name != nil,
		req.Q19Location != nil,
	} {
		if set {
			return true
		}
	}
	return false
}

// validRankings checks the ranking invariant: positions are positive and
// unique per response.
func validRankings(rankings map[string]int) bool {
	seen := make(map[int]bool, len(rankings))
	for _, rank := range rankings {
		if rank < 1 || seen[rank] {
			return false
		}
		seen[rank] = true
	}
	return true
}

// toModel maps the request onto a response row, leaving absent values as
// NULLs (scalars) or empty collections.
func (req *SubmitRequest) toModel() *models.SurveyResponse {
	return &models.SurveyResponse{
		Q1OverallRating:              req.Q1OverallRating,
		Q1Comment:                    req.Q1Comment,
		Q2ReturnIntent:               req.Q2ReturnIntent,
		Q2Comment:                    req.Q2Comment,
		Q3CoworkingEffectiveness:     req.Q3CoworkingEffectiveness,
		Q3Comment:                    req.Q3Comment,
		Q4ConnectionTypes:            req.Q4ConnectionTypes,
		Q4ConnectionOther:            req.Q4ConnectionOther,
		Q5ConnectionDepth:            req.Q5ConnectionDepth,
		Q5Comment:                    req.Q5Comment,
		Q6LearningValue:              req.Q6LearningValue,
		Q6Comment:                    req.Q6Comment,
		Q7FutureTopics:               req.Q7FutureTopics,
		Q8SaturdayWorth:              req.Q8SaturdayWorth,
		Q8Comment:                    req.Q8Comment,
		Q9PreConferenceCommunication: req.Q9PreConferenceCommunication,
		Q10AccommodationsVenue:       req.Q10AccommodationsVenue,
		Q11SessionRankings:           req.Q11SessionRankings,
		Q12ConferenceLength:          req.Q12ConferenceLength,
		Q13ComparisonToPD:            req.Q13ComparisonToPD,
		Q14LikedMost:                 req.Q14LikedMost,
		Q15AdditionalFeedback:        req.Q15AdditionalFeedback,
		Q16Improvements:              req.Q16Improvements,
		Q16Comment:                   req.Q16Comment,
		Q17FeedbackConfidence:        req.Q17FeedbackConfidence,
		Q17FeedbackOther:             req.Q17FeedbackOther,
		Q18EmploymentStatus:          req.Q18EmploymentStatus,
		Q19Name:                      req.Q19Name,
		Q19Location:                  req.Q19Location,
	}
}

// Store persists survey submissions.
type Store interface {
	CreateSubmission(ctx context.Context, resp *models.SurveyResponse) error
}

// Notifier dispatches the post-submission webhook. It must never fail the
// caller; delivery problems are its own to log.
type Notifier interface {
	HandleSubmission(ctx context.Context, id uuid.UUID, overallRating *int)
}

// Handler handles the public survey endpoint.
type Handler struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
}

// NewHandler creates a survey handler.
func NewHandler(store Store, notifier Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, notifier: notifier, logger: logger}
}

// Submit handles POST /api/survey/submit. Persists the response and returns
// its identity, then notifies the webhook endpoint on a detached goroutine
// so delivery can never block or fail the submission.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !req.HasAnyAnswer() {
		response.BadRequest(c, "Cannot submit empty survey. Please answer at least one question.")
		return
	}
	if !validRankings(req.Q11SessionRankings) {
		response.BadRequest(c, "q11SessionRankings must use unique positive rank positions")
		return
	}

	resp := req.toModel()
	if err := h.store.CreateSubmission(c.Request.Context(), resp); err != nil {
		h.logger.Error("create submission failed", zap.Error(err))
		response.Internal(c, "failed to submit survey")
		return
	}
	h.logger.Info("survey submitted", zap.String("submission_id", resp.ID.String()))

	if h.notifier != nil {
		// Detached from the request lifecycle: the submission is already
		// committed and its result must not depend on webhook delivery.
		go func(id uuid.UUID, rating *int) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			h.notifier.HandleSubmission(ctx, id, rating)
		}(resp.ID, req.Q1OverallRating)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        resp.ID,
		"userId":    resp.UserID,
		"status":    "submitted",
		"createdAt": resp.CreatedAt.UTC().Format(time.RFC3339),
		"message":   "Survey submitted successfully",
	})
}
