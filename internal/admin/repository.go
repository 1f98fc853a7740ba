package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/nam-conference/backend/internal/models"
)

// Repository handles admin dashboard queries.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an admin repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Metrics returns the SUBMITTED and DRAFT counts. The two counts are
// independent and run concurrently.
func (r *Repository) Metrics(ctx context.Context) (completed, inProgress int, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM survey_responses WHERE status = $1`,
			models.StatusSubmitted).Scan(&completed)
	})
	g.Go(func() error {
		return r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM survey_responses WHERE status = $1`,
			models.StatusDraft).Scan(&inProgress)
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return completed, inProgress, nil
}

// RecentSubmitted returns the most recently created SUBMITTED responses,
// newest first, projecting only id and creation time.
func (r *Repository) RecentSubmitted(ctx context.Context, limit int) ([]models.ResponseSummary, error) {
	const q = `SELECT id, created_at FROM survey_responses
		WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, models.StatusSubmitted, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.ResponseSummary
	for rows.Next() {
		var s models.ResponseSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetResponse returns one response row with every answer column.
func (r *Repository) GetResponse(ctx context.Context, id uuid.UUID) (*models.SurveyResponse, error) {
	const q = `SELECT id, user_id, status, created_at, updated_at,
			q1_overall_rating, q1_comment,
			q2_return_intent, q2_comment,
			q3_coworking_effectiveness, q3_comment,
			q4_connection_types, q4_connection_other,
			q5_connection_depth, q5_comment,
			q6_learning_value, q6_comment,
			q7_future_topics,
			q8_saturday_worth, q8_comment,
			q9_pre_conference_communication,
			q10_accommodations_venue,
			q11_session_rankings,
			q12_conference_length,
			q13_comparison_to_pd,
			q14_liked_most,
			q15_additional_feedback,
			q16_improvements, q16_comment,
			q17_feedback_confidence, q17_feedback_other,
			q18_employment_status,
			q19_name, q19_location
		FROM survey_responses WHERE id = $1`
	var resp models.SurveyResponse
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&resp.ID, &resp.UserID, &resp.Status, &resp.CreatedAt, &resp.UpdatedAt,
		&resp.Q1OverallRating, &resp.Q1Comment,
		&resp.Q2ReturnIntent, &resp.Q2Comment,
		&resp.Q3CoworkingEffectiveness, &resp.Q3Comment,
		&resp.Q4ConnectionTypes, &resp.Q4ConnectionOther,
		&resp.Q5ConnectionDepth, &resp.Q5Comment,
		&resp.Q6LearningValue, &resp.Q6Comment,
		&resp.Q7FutureTopics,
		&resp.Q8SaturdayWorth, &resp.Q8Comment,
		&resp.Q9PreConferenceCommunication,
		&resp.Q10AccommodationsVenue,
		&resp.Q11SessionRankings,
		&resp.Q12ConferenceLength,
		&resp.Q13ComparisonToPD,
		&resp.Q14LikedMost,
		&resp.Q15AdditionalFeedback,
		&resp.Q16Improvements, &resp.Q16Comment,
		&resp.Q17FeedbackConfidence, &resp.Q17FeedbackOther,
		&resp.Q18EmploymentStatus,
		&resp.Q19Name, &resp.Q19Location,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
