package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nam-conference/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	completed  int
	inProgress int
	metricsErr error
	recent     []models.ResponseSummary
	responses  map[uuid.UUID]*models.SurveyResponse
}

func (s *fakeStore) Metrics(context.Context) (int, int, error) {
	return s.completed, s.inProgress, s.metricsErr
}

func (s *fakeStore) RecentSubmitted(_ context.Context, limit int) ([]models.ResponseSummary, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

func (s *fakeStore) GetResponse(_ context.Context, id uuid.UUID) (*models.SurveyResponse, error) {
	if resp, ok := s.responses[id]; ok {
		return resp, nil
	}
	return nil, pgx.ErrNoRows
}

func adminRouter(store Store) *gin.Engine {
	h := NewHandler(store, nil)
	router := gin.New()
	router.GET("/api/admin/metrics", h.GetMetrics)
	router.GET("/api/admin/recent-responses", h.GetRecentResponses)
	router.GET("/api/admin/responses/:id", h.GetResponseDetail)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestGetMetrics(t *testing.T) {
	w := get(adminRouter(&fakeStore{completed: 47, inProgress: 3}), "/api/admin/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"completed": 47, "inProgress": 3}`, w.Body.String())
}

func TestGetMetrics_Empty(t *testing.T) {
	w := get(adminRouter(&fakeStore{}), "/api/admin/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"completed": 0, "inProgress": 0}`, w.Body.String())
}

func TestGetRecentResponses(t *testing.T) {
	base := time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	var recent []models.ResponseSummary
	for i := 0; i < 5; i++ {
		recent = append(recent, models.ResponseSummary{
			ID:        uuid.New(),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	w := get(adminRouter(&fakeStore{recent: recent}), "/api/admin/recent-responses")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Responses []struct {
			ID          string `json:"id"`
			SubmittedAt string `json:"submittedAt"`
		} `json:"responses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Responses, 5)
	assert.Equal(t, recent[0].ID.String(), body.Responses[0].ID)
	assert.Equal(t, "2025-11-08T12:00:00Z", body.Responses[0].SubmittedAt)
	assert.Equal(t, "2025-11-08T08:00:00Z", body.Responses[4].SubmittedAt)
}

func TestGetRecentResponses_EmptyList(t *testing.T) {
	w := get(adminRouter(&fakeStore{}), "/api/admin/recent-responses")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"responses": []}`, w.Body.String())
}

func TestGetResponseDetail(t *testing.T) {
	id := uuid.New()
	resp := &models.SurveyResponse{
		ID:        id,
		Status:    models.StatusSubmitted,
		CreatedAt: time.Date(2025, 11, 8, 17, 30, 0, 0, time.UTC),

		Q1OverallRating:   intPtr(5),
		Q4ConnectionTypes: []string{"leadership", "associates"},
		Q4ConnectionOther: strPtr("Industry peers"),
		Q11SessionRankings: map[string]int{
			"workshops":     1,
			"presentations": 2,
			"networking":    3,
			"coworking":     4,
		},
		Q19Name:     strPtr("Jane Smith"),
		Q19Location: strPtr("San Francisco, CA"),
	}
	store := &fakeStore{responses: map[uuid.UUID]*models.SurveyResponse{id: resp}}

	w := get(adminRouter(store), "/api/admin/responses/"+id.String())
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID          string `json:"id"`
		SubmittedAt string `json:"submittedAt"`
		Questions   []struct {
			QuestionNumber int             `json:"questionNumber"`
			QuestionText   string          `json:"questionText"`
			QuestionType   string          `json:"questionType"`
			Answer         json.RawMessage `json:"answer"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "2025-11-08T17:30:00Z", body.SubmittedAt)

	// All 19 questions in ordinal order regardless of which were answered.
	require.Len(t, body.Questions, 19)
	for i, q := range body.Questions {
		assert.Equal(t, i+1, q.QuestionNumber)
		assert.NotEmpty(t, q.QuestionText)
	}

	assert.JSONEq(t, `{"value": 5, "label": "Excellent"}`, string(body.Questions[0].Answer))
	assert.JSONEq(t,
		`{"selectedOptions": ["leadership", "associates", "Other: Industry peers"]}`,
		string(body.Questions[3].Answer))
	assert.JSONEq(t,
		`{"rankedItems": ["workshops", "presentations", "networking", "coworking"]}`,
		string(body.Questions[10].Answer))
	assert.JSONEq(t, `{"text": "Jane Smith - San Francisco, CA"}`, string(body.Questions[18].Answer))

	// Unanswered questions appear with a null answer.
	assert.Equal(t, "null", string(body.Questions[1].Answer))
	assert.Equal(t, "likert", body.Questions[1].QuestionType)
}

func TestGetResponseDetail_NotFound(t *testing.T) {
	id := uuid.New()
	w := get(adminRouter(&fakeStore{}), "/api/admin/responses/"+id.String())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), id.String(), "not-found response references the id")
}

func TestGetResponseDetail_InvalidID(t *testing.T) {
	w := get(adminRouter(&fakeStore{}), "/api/admin/responses/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
