package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `{
	"quiz": [
		{
			"question": "Where was Alan Turing born?",
			"options": ["London", "Manchester", "Cambridge", "Oxford"],
			"answer": "London",
			"difficulty": "easy",
			"explanation": "Turing was born in Maida Vale, London."
		}
	],
	"related_topics": ["Cryptography", "Enigma machine"]
}`

func TestParseQuizText(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		parsed, err := parseQuizText(validQuizJSON)
		require.NoError(t, err)
		require.Len(t, parsed.Quiz, 1)
		assert.Equal(t, "London", parsed.Quiz[0].Answer)
		assert.Equal(t, []string{"Cryptography", "Enigma machine"}, parsed.RelatedTopics)
	})

	t.Run("json code fence", func(t *testing.T) {
		parsed, err := parseQuizText("```json\n" + validQuizJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, parsed.Quiz, 1)
	})

	t.Run("bare code fence", func(t *testing.T) {
		parsed, err := parseQuizText("```\n" + validQuizJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, parsed.Quiz, 1)
	})

	t.Run("prose around the object", func(t *testing.T) {
		parsed, err := parseQuizText("Here is your quiz:\n" + validQuizJSON + "\nEnjoy!")
		require.NoError(t, err)
		assert.Len(t, parsed.Quiz, 1)
	})

	t.Run("no quiz field", func(t *testing.T) {
		_, err := parseQuizText(`{"related_topics": ["x"]}`)
		assert.Error(t, err)
	})

	t.Run("not JSON at all", func(t *testing.T) {
		_, err := parseQuizText("I cannot help with that.")
		assert.Error(t, err)
	})

	t.Run("broken embedded object", func(t *testing.T) {
		_, err := parseQuizText(`prefix {"quiz": [ } suffix`)
		assert.Error(t, err)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
