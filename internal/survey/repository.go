package survey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nam-conference/backend/internal/models"
)

// Repository handles survey response persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a survey repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateSubmission resolves the anonymous user and inserts the response in
// one transaction. On success the response's ID, UserID, Status and
// timestamps are populated from the database.
func (r *Repository) CreateSubmission(ctx context.Context, resp *models.SurveyResponse) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	user, err := getOrCreateAnonymousUser(ctx, tx)
	if err != nil {
		return fmt.Errorf("resolve anonymous user: %w", err)
	}
	resp.UserID = user.ID
	resp.Status = models.StatusSubmitted

	const q = `INSERT INTO survey_responses (
			id, user_id, status,
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
			q19_name, q19_location)
		VALUES (gen_random_uuid(), $1, $2,
			$3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30, $31)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, q,
		resp.UserID, resp.Status,
		resp.Q1OverallRating, resp.Q1Comment,
		resp.Q2ReturnIntent, resp.Q2Comment,
		resp.Q3CoworkingEffectiveness, resp.Q3Comment,
		emptyIfNil(resp.Q4ConnectionTypes), resp.Q4ConnectionOther,
		resp.Q5ConnectionDepth, resp.Q5Comment,
		resp.Q6LearningValue, resp.Q6Comment,
		resp.Q7FutureTopics,
		resp.Q8SaturdayWorth, resp.Q8Comment,
		resp.Q9PreConferenceCommunication,
		resp.Q10AccommodationsVenue,
		resp.Q11SessionRankings,
		resp.Q12ConferenceLength,
		resp.Q13ComparisonToPD,
		resp.Q14LikedMost,
		resp.Q15AdditionalFeedback,
		resp.Q16Improvements, resp.Q16Comment,
		emptyIfNil(resp.Q17FeedbackConfidence), resp.Q17FeedbackOther,
		resp.Q18EmploymentStatus,
		resp.Q19Name, resp.Q19Location,
	).Scan(&resp.ID, &resp.CreatedAt, &resp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// getOrCreateAnonymousUser returns the shared anonymous user, creating it on
// first use. Two concurrent first submissions may both attempt the insert;
// the unique constraint on email decides, and the loser falls back to the
// row the winner created.
func getOrCreateAnonymousUser(ctx context.Context, tx pgx.Tx) (*models.User, error) {
	user, err := lookupAnonymousUser(ctx, tx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	const insert = `INSERT INTO users (id, email, name, role)
		VALUES (gen_random_uuid(), $1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, name, role, created_at`
	var u models.User
	err = tx.QueryRow(ctx, insert, models.AnonymousEmail, models.AnonymousName, models.RoleParticipant).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err == nil {
		return &u, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the creation race; the row exists now.
		return lookupAnonymousUser(ctx, tx)
	}
	return nil, err
}

func lookupAnonymousUser(ctx context.Context, tx pgx.Tx) (*models.User, error) {
	const q = `SELECT id, email, name, role, created_at FROM users WHERE email = $1`
	var u models.User
	err := tx.QueryRow(ctx, q, models.AnonymousEmail).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountByStatus returns the number of responses with the given status.
func (r *Repository) CountByStatus(ctx context.Context, status models.Status) (int, error) {
	const q = `SELECT COUNT(*) FROM survey_responses WHERE status = $1`
	var count int
	err := r.pool.QueryRow(ctx, q, status).Scan(&count)
	return count, err
}

// GetSubmissionTime returns the creation timestamp of a response.
func (r *Repository) GetSubmissionTime(ctx context.Context, id uuid.UUID) (time.Time, error) {
	const q = `SELECT created_at FROM survey_responses WHERE id = $1`
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, q, id).Scan(&createdAt)
	return createdAt, err
}

// emptyIfNil keeps absent multi-selects as empty arrays in the database
// rather than NULLs.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
