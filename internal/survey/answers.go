package survey

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nam-conference/backend/internal/models"
)

// Answer is the extracted, display-ready form of one question's stored
// value. Exactly one concrete shape applies per question type; an
// unanswered question extracts to a nil Answer.
type Answer interface {
	isAnswer()
}

// LikertAnswer carries a rating score and its display label. A stored "NA"
// (or any other non-numeric string) yields Value 0 with the raw string as
// the label.
type LikertAnswer struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// MultiSelectAnswer carries the chosen option tokens, with any free-text
// "other" elaboration appended as a final "Other: ..." entry.
type MultiSelectAnswer struct {
	SelectedOptions []string `json:"selectedOptions"`
}

// RankingAnswer carries option keys ordered by ascending rank position.
type RankingAnswer struct {
	RankedItems []string `json:"rankedItems"`
}

// TextAnswer carries free text (open-ended and single-choice questions).
type TextAnswer struct {
	Text string `json:"text"`
}

func (LikertAnswer) isAnswer()      {}
func (MultiSelectAnswer) isAnswer() {}
func (RankingAnswer) isAnswer()     {}
func (TextAnswer) isAnswer()        {}

// ExtractAnswer reconstructs the structured answer for one question from a
// stored response row. It is pure and total: every question type is handled
// and an unrecognized type yields nil rather than panicking.
func ExtractAnswer(meta QuestionMeta, r *models.SurveyResponse) Answer {
	switch meta.Type {
	case TypeLikert:
		return extractLikert(meta, r)
	case TypeMultiSelect:
		return extractMultiSelect(meta, r)
	case TypeRanking:
		return extractRanking(meta, r)
	case TypeOpenEnded:
		return extractOpenEnded(meta, r)
	case TypeSingleChoice:
		return extractSingleChoice(meta, r)
	default:
		return nil
	}
}

func extractLikert(meta QuestionMeta, r *models.SurveyResponse) Answer {
	// Numeric Likert column.
	if meta.IntValue != nil {
		v := meta.IntValue(r)
		if v == nil {
			return nil
		}
		return LikertAnswer{Value: *v, Label: likertLabel(meta, *v)}
	}
	// Likert-with-NA column, stored as text.
	if meta.StrValue == nil {
		return nil
	}
	s := meta.StrValue(r)
	if s == nil {
		return nil
	}
	if n, err := strconv.Atoi(*s); err == nil && n >= 1 && n <= 5 {
		return LikertAnswer{Value: n, Label: likertLabel(meta, n)}
	}
	// Non-numeric strings ("NA" and friends) keep the raw text as label.
	return LikertAnswer{Value: 0, Label: *s}
}

func likertLabel(meta QuestionMeta, n int) string {
	if label, ok := meta.Labels[n]; ok {
		return label
	}
	return strconv.Itoa(n)
}

func extractMultiSelect(meta QuestionMeta, r *models.SurveyResponse) Answer {
	if meta.ListValue == nil {
		return nil
	}
	selected := meta.ListValue(r)
	if len(selected) == 0 {
		return nil
	}
	options := make([]string, len(selected))
	copy(options, selected)
	if meta.OtherValue != nil {
		if other := meta.OtherValue(r); other != nil && strings.TrimSpace(*other) != "" {
			options = append(options, "Other: "+*other)
		}
	}
	return MultiSelectAnswer{SelectedOptions: options}
}

func extractRanking(meta QuestionMeta, r *models.SurveyResponse) Answer {
	if meta.MapValue == nil {
		return nil
	}
	rankings := meta.MapValue(r)
	if len(rankings) == 0 {
		return nil
	}
	items := make([]string, 0, len(rankings))
	for key := range rankings {
		items = append(items, key)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if rankings[items[i]] != rankings[items[j]] {
			return rankings[items[i]] < rankings[items[j]]
		}
		return items[i] < items[j]
	})
	return RankingAnswer{RankedItems: items}
}

func extractOpenEnded(meta QuestionMeta, r *models.SurveyResponse) Answer {
	if meta.StrValue == nil {
		return nil
	}
	primary := trimmed(meta.StrValue(r))
	// The name question pairs a second free-text column (home city/state).
	var secondary string
	if meta.OtherValue != nil {
		secondary = trimmed(meta.OtherValue(r))
	}
	switch {
	case primary != "" && secondary != "":
		return TextAnswer{Text: primary + " - " + secondary}
	case primary != "":
		return TextAnswer{Text: primary}
	case secondary != "":
		return TextAnswer{Text: secondary}
	default:
		return nil
	}
}

func extractSingleChoice(meta QuestionMeta, r *models.SurveyResponse) Answer {
	if meta.StrValue == nil {
		return nil
	}
	if text := trimmed(meta.StrValue(r)); text != "" {
		return TextAnswer{Text: text}
	}
	return nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
