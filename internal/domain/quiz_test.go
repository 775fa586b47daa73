package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionNormalize(t *testing.T) {
	t.Run("RewritesAnswerToExactOptionText", func(t *testing.T) {
		q := Question{
			Question:    "  Who broke Enigma? ",
			Options:     []string{"Alan Turing ", "Ada Lovelace", "Charles Babbage", "John von Neumann"},
			Answer:      "alan turing",
			Difficulty:  "EASY",
			Explanation: "Turing led the Hut 8 effort.",
		}
		assert.True(t, q.Normalize())
		assert.Equal(t, "Alan Turing", q.Answer)
		assert.Equal(t, q.Options[0], q.Answer)
		assert.Equal(t, DifficultyEasy, q.Difficulty)
	})

	t.Run("UnknownDifficultyDefaultsToMedium", func(t *testing.T) {
		q := Question{
			Question:   "Q",
			Options:    []string{"a", "b", "c", "d"},
			Answer:     "b",
			Difficulty: "tricky",
		}
		assert.True(t, q.Normalize())
		assert.Equal(t, DifficultyMedium, q.Difficulty)
	})

	t.Run("RejectsWrongOptionCount", func(t *testing.T) {
		q := Question{
			Question: "Q",
			Options:  []string{"a", "b", "c"},
			Answer:   "a",
		}
		assert.False(t, q.Normalize())
	})

	t.Run("RejectsAnswerNotInOptions", func(t *testing.T) {
		q := Question{
			Question: "Q",
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "e",
		}
		assert.False(t, q.Normalize())
	})

	t.Run("RejectsEmptyQuestionText", func(t *testing.T) {
		q := Question{
			Question: "   ",
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "a",
		}
		assert.False(t, q.Normalize())
	})
}

func TestNormalizeQuiz(t *testing.T) {
	questions := []Question{
		{Question: "keep", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Question: "drop", Options: []string{"a", "b"}, Answer: "a"},
		{Question: "keep too", Options: []string{"a", "b", "c", "d"}, Answer: "D"},
	}

	kept, dropped := NormalizeQuiz(questions)
	assert.Len(t, kept, 2)
	assert.Equal(t, 1, dropped)
	for _, q := range kept {
		assert.Contains(t, q.Options, q.Answer)
	}
}
