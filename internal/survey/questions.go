package survey

import "github.com/nam-conference/backend/internal/models"

// QuestionType tags how a question's stored value is interpreted.
type QuestionType string

const (
	TypeLikert       QuestionType = "likert"
	TypeMultiSelect  QuestionType = "multi-select"
	TypeRanking      QuestionType = "ranking"
	TypeOpenEnded    QuestionType = "open-ended"
	TypeSingleChoice QuestionType = "single-choice"
)

// QuestionMeta describes one survey question: its ordinal, display text,
// type, Likert label lookup, and typed accessors into the stored row.
// Accessors replace any runtime field-name lookup so that each question's
// column binding is checked at compile time. Only the accessors matching the
// question type are set.
type QuestionMeta struct {
	Number int
	Text   string
	Type   QuestionType

	// Labels maps Likert scores 1-5 to their display labels.
	Labels map[int]string

	// IntValue reads a numeric Likert column.
	IntValue func(*models.SurveyResponse) *int
	// StrValue reads a text column (Likert-with-NA, single-choice, open-ended).
	StrValue func(*models.SurveyResponse) *string
	// ListValue reads a multi-select column.
	ListValue func(*models.SurveyResponse) []string
	// MapValue reads a ranking column.
	MapValue func(*models.SurveyResponse) map[string]int
	// OtherValue reads a paired free-text column ("other" elaboration for
	// multi-selects, the location half of the name question).
	OtherValue func(*models.SurveyResponse) *string
}

// Likert label scales. One scale per rating question; 5 is always the most
// positive answer.
var (
	labelsStandard = map[int]string{
		5: "Excellent",
		4: "Good",
		3: "Neutral",
		2: "Fair",
		1: "Poor",
	}
	labelsReturnIntent = map[int]string{
		5: "Definitely yes",
		4: "Probably yes",
		3: "Unsure",
		2: "Probably not",
		1: "Definitely not",
	}
	labelsCoworkingValue = map[int]string{
		5: "Extremely valuable",
		4: "Very valuable",
		3: "Moderately valuable",
		2: "Slightly valuable",
		1: "Not at all valuable",
	}
	labelsConnectionDepth = map[int]string{
		5: "Deep, meaningful professional relationships",
		4: "Strong connections with potential for follow-up",
		3: "Good conversations and exchanges",
		2: "Mostly surface-level introductions",
		1: "Minimal meaningful interaction",
	}
	labelsLearningValue = map[int]string{
		5: "Excellent - learned significant new skills/knowledge",
		4: "Good - learned useful things",
		3: "Neutral - some learning but limited",
		2: "Fair - minimal learning value",
		1: "Poor - did not learn anything meaningful",
	}
	labelsSaturdayWorth = map[int]string{
		5: "Absolutely worth it",
		4: "Mostly worth it",
		3: "Neutral",
		2: "Questionable value for my time",
		1: "Not worth my Saturday",
	}
	labelsPreCommunication = map[int]string{
		5: "Very clear - knew exactly what to expect",
		4: "Mostly clear",
		3: "Somewhat clear",
		2: "Unclear in some areas",
		1: "Very unclear - arrived unsure what to expect",
	}
	labelsComparison = map[int]string{
		5: "Much better than other opportunities",
		4: "Somewhat better",
		3: "About the same",
		2: "Somewhat worse",
		1: "Much worse",
	}
)

// questions is the static registry of all 19 survey questions, in ordinal
// order. It is the single source of truth for reconstructing the admin
// detail view and must stay in lockstep with the survey_responses columns.
var questions = []QuestionMeta{
	{
		Number:   1,
		Text:     "How would you rate your overall NAM Conference experience?",
		Type:     TypeLikert,
		Labels:   labelsStandard,
		IntValue: func(r *models.SurveyResponse) *int { return r.Q1OverallRating },
	},
	{
		Number:   2,
		Text:     "Would you want to attend NAM Conference again next year?",
		Type:     TypeLikert,
		Labels:   labelsReturnIntent,
		IntValue: func(r *models.SurveyResponse) *int { return r.Q2ReturnIntent },
	},
	{
		Number:   3,
		Text:     "How valuable was the coworking day for networking and collaboration?",
		Type:     TypeLikert,
		Labels:   labelsCoworkingValue,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q3CoworkingEffectiveness },
	},
	{
		Number:     4,
		Text:       "Who did you most value connecting with at this conference?",
		Type:       TypeMultiSelect,
		ListValue:  func(r *models.SurveyResponse) []string { return r.Q4ConnectionTypes },
		OtherValue: func(r *models.SurveyResponse) *string { return r.Q4ConnectionOther },
	},
	{
		Number:   5,
		Text:     "How would you describe the quality of connections you made at this conference?",
		Type:     TypeLikert,
		Labels:   labelsConnectionDepth,
		IntValue: func(r *models.SurveyResponse) *int { return r.Q5ConnectionDepth },
	},
	{
		Number:   6,
		Text:     "How would you rate the educational/learning value of the conference content?",
		Type:     TypeLikert,
		Labels:   labelsLearningValue,
		IntValue: func(r *models.SurveyResponse) *int { return r.Q6LearningValue },
	},
	{
		Number:   7,
		Text:     "What topics would you like to see at future conferences?",
		Type:     TypeOpenEnded,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q7FutureTopics },
	},
	{
		Number:   8,
		Text:     "The conference asks you to use personal time on a Saturday. Was this time commitment worth it for you?",
		Type:     TypeLikert,
		Labels:   labelsSaturdayWorth,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q8SaturdayWorth },
	},
	{
		Number:   9,
		Text:     "How clear were your expectations before arriving at the conference?",
		Type:     TypeLikert,
		Labels:   labelsPreCommunication,
		IntValue: func(r *models.SurveyResponse) *int { return r.Q9PreConferenceCommunication },
	},
	{
		Number:   10,
		Text:     "How would you rate the hotel accommodations, conference venue, and catered meals and snacks?",
		Type:     TypeLikert,
		Labels:   labelsStandard,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q10AccommodationsVenue },
	},
	{
		Number:   11,
		Text:     "Rank the following session types in order of value to you",
		Type:     TypeRanking,
		MapValue: func(r *models.SurveyResponse) map[string]int { return r.Q11SessionRankings },
	},
	{
		Number:   12,
		Text:     "Was the overall conference length appropriate?",
		Type:     TypeSingleChoice,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q12ConferenceLength },
	},
	{
		Number:   13,
		Text:     "How does NAM Conference compare to other professional development opportunities you've experienced?",
		Type:     TypeLikert,
		Labels:   labelsComparison,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q13ComparisonToPD },
	},
	{
		Number:   14,
		Text:     "What did you like most about the conference?",
		Type:     TypeOpenEnded,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q14LikedMost },
	},
	{
		Number:   15,
		Text:     "Is there anything else you'd like us to know about your conference experience?",
		Type:     TypeOpenEnded,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q15AdditionalFeedback },
	},
	{
		Number:   16,
		Text:     "If you attended the last NAM Conference, did you notice improvements based on previous feedback?",
		Type:     TypeSingleChoice,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q16Improvements },
	},
	{
		Number:     17,
		Text:       "What would make you most confident that your feedback will be acted upon?",
		Type:       TypeMultiSelect,
		ListValue:  func(r *models.SurveyResponse) []string { return r.Q17FeedbackConfidence },
		OtherValue: func(r *models.SurveyResponse) *string { return r.Q17FeedbackOther },
	},
	{
		Number:   18,
		Text:     "What is your current status with Equal Experts?",
		Type:     TypeSingleChoice,
		StrValue: func(r *models.SurveyResponse) *string { return r.Q18EmploymentStatus },
	},
	{
		Number:     19,
		Text:       "If comfortable please provide your name and home city and state",
		Type:       TypeOpenEnded,
		StrValue:   func(r *models.SurveyResponse) *string { return r.Q19Name },
		OtherValue: func(r *models.SurveyResponse) *string { return r.Q19Location },
	},
}

// Questions returns the full question registry in ascending ordinal order.
func Questions() []QuestionMeta {
	return questions
}
