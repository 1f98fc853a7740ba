package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The registry drives both validation and detail reconstruction; these
// checks keep it from drifting.
func TestQuestions_RegistryIntegrity(t *testing.T) {
	metas := Questions()
	require.Len(t, metas, 19)

	for i, meta := range metas {
		assert.Equal(t, i+1, meta.Number, "ordinals must be 1..19 in order")
		assert.NotEmpty(t, meta.Text, "question %d has no text", meta.Number)

		switch meta.Type {
		case TypeLikert:
			require.NotNil(t, meta.Labels, "likert question %d has no labels", meta.Number)
			for score := 1; score <= 5; score++ {
				assert.Contains(t, meta.Labels, score, "question %d missing label for %d", meta.Number, score)
			}
			assert.True(t, meta.IntValue != nil || meta.StrValue != nil,
				"likert question %d has no value accessor", meta.Number)
		case TypeMultiSelect:
			assert.NotNil(t, meta.ListValue, "multi-select question %d has no list accessor", meta.Number)
		case TypeRanking:
			assert.NotNil(t, meta.MapValue, "ranking question %d has no map accessor", meta.Number)
		case TypeOpenEnded, TypeSingleChoice:
			assert.NotNil(t, meta.StrValue, "question %d has no string accessor", meta.Number)
		default:
			t.Errorf("question %d has unknown type %q", meta.Number, meta.Type)
		}
	}
}

func TestQuestions_TypeDistribution(t *testing.T) {
	counts := make(map[QuestionType]int)
	for _, meta := range Questions() {
		counts[meta.Type]++
	}
	assert.Equal(t, map[QuestionType]int{
		TypeLikert:       9,
		TypeMultiSelect:  2,
		TypeRanking:      1,
		TypeOpenEnded:    4,
		TypeSingleChoice: 3,
	}, counts)
}
