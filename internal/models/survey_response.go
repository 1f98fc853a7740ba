package models

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a survey response.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
)

// SurveyResponse is one survey submission: a wide row with one column group
// per question. Nullable scalars are pointers; absent collections are empty.
// Responses are immutable after creation.
type SurveyResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Q1: overall conference rating (Likert 1-5)
	Q1OverallRating *int
	Q1Comment       *string

	// Q2: return attendance intent (Likert 1-5)
	Q2ReturnIntent *int
	Q2Comment      *string

	// Q3: coworking day effectiveness (Likert 1-5 or NA, stored as text)
	Q3CoworkingEffectiveness *string
	Q3Comment                *string

	// Q4: most valued connection types (multi-select + other)
	Q4ConnectionTypes []string
	Q4ConnectionOther *string

	// Q5: connection depth (Likert 1-5)
	Q5ConnectionDepth *int
	Q5Comment         *string

	// Q6: learning value (Likert 1-5)
	Q6LearningValue *int
	Q6Comment       *string

	// Q7: future topics (open-ended)
	Q7FutureTopics *string

	// Q8: Saturday time commitment worth it (Likert 1-5 or NA)
	Q8SaturdayWorth *string
	Q8Comment       *string

	// Q9: pre-conference communication clarity (Likert 1-5)
	Q9PreConferenceCommunication *int

	// Q10: accommodations, venue and catering (Likert 1-5 or NA)
	Q10AccommodationsVenue *string

	// Q11: session type rankings (option key -> rank position)
	Q11SessionRankings map[string]int

	// Q12: conference length (too_short | just_right | too_long)
	Q12ConferenceLength *string

	// Q13: comparison to other professional development (Likert 1-5 or NA)
	Q13ComparisonToPD *string

	// Q14/Q15: open-ended feedback
	Q14LikedMost          *string
	Q15AdditionalFeedback *string

	// Q16: improvements since last conference (single choice + comment)
	Q16Improvements *string
	Q16Comment      *string

	// Q17: feedback confidence (multi-select + other)
	Q17FeedbackConfidence []string
	Q17FeedbackOther      *string

	// Q18: employment status (employee | contractor | client | other)
	Q18EmploymentStatus *string

	// Q19: name and home city/state (optional demographics)
	Q19Name     *string
	Q19Location *string
}

// ResponseSummary is the projection used by the recent-responses list.
type ResponseSummary struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
