package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generationPayload renders a response body with the given questions, the
// shape the model is instructed to produce.
func generationPayload(t *testing.T, questions []GeneratedQuestion) string {
	t.Helper()
	raw, err := json.Marshal(generatedTestPayload{Questions: questions})
	require.NoError(t, err)
	return string(raw)
}

func wellFormedQuestions(n int) []GeneratedQuestion {
	qs := make([]GeneratedQuestion, n)
	for i := range qs {
		qs[i] = GeneratedQuestion{
			Prompt:        "what is a goroutine",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: i % 4,
		}
	}
	return qs
}

func TestParseGeneratedQuestions_AcceptsExactCount(t *testing.T) {
	raw := generationPayload(t, wellFormedQuestions(10))

	questions, err := parseGeneratedQuestions(raw, 10)
	require.NoError(t, err)
	require.Len(t, questions, 10)
	assert.Equal(t, "what is a goroutine", questions[0].Prompt)
	assert.Equal(t, []string{"a", "b", "c", "d"}, questions[0].Options)
}

func TestParseGeneratedQuestions_RejectsWrongCount(t *testing.T) {
	t.Run("too few", func(t *testing.T) {
		raw := generationPayload(t, wellFormedQuestions(9))

		_, err := parseGeneratedQuestions(raw, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "returned 9 questions, expected 10")
	})

	t.Run("too many", func(t *testing.T) {
		raw := generationPayload(t, wellFormedQuestions(11))

		_, err := parseGeneratedQuestions(raw, 10)
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseGeneratedQuestions(`{"questions":[]}`, 10)
		require.Error(t, err)
	})
}

func TestParseGeneratedQuestions_RejectsWrongOptionCount(t *testing.T) {
	qs := wellFormedQuestions(10)
	qs[4].Options = []string{"a", "b", "c"}
	raw := generationPayload(t, qs)

	_, err := parseGeneratedQuestions(raw, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 5 has 3 options")
}

func TestParseGeneratedQuestions_RejectsAnswerIndexOutOfRange(t *testing.T) {
	t.Run("above", func(t *testing.T) {
		qs := wellFormedQuestions(10)
		qs[0].CorrectOption = 4
		_, err := parseGeneratedQuestions(generationPayload(t, qs), 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("negative", func(t *testing.T) {
		qs := wellFormedQuestions(10)
		qs[9].CorrectOption = -1
		_, err := parseGeneratedQuestions(generationPayload(t, qs), 10)
		require.Error(t, err)
	})
}

func TestParseGeneratedQuestions_RejectsMalformedJSON(t *testing.T) {
	_, err := parseGeneratedQuestions(`here are your questions: [`, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing generated questions")
}
