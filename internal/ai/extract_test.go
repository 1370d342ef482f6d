package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSpan(t *testing.T) {
	t.Run("should recover the object byte-for-byte regardless of prose", func(t *testing.T) {
		object := `{"title": "Pasta", "servings": 4}`
		raw := "Sure! Here is your recipe:\n" + object + "\nEnjoy your meal."

		span, err := objectSpan(raw)

		require.NoError(t, err)
		assert.Equal(t, object, span)
	})

	t.Run("should span from first opening to last closing brace", func(t *testing.T) {
		raw := `intro {"a": {"b": 1}} outro`

		span, err := objectSpan(raw)

		require.NoError(t, err)
		assert.Equal(t, `{"a": {"b": 1}}`, span)
	})

	t.Run("should fail when no braces are present", func(t *testing.T) {
		_, err := objectSpan("no braces here")

		var extractionErr *ExtractionError
		require.ErrorAs(t, err, &extractionErr)
		assert.Contains(t, extractionErr.Reason, "no structured object")
	})

	t.Run("should fail when braces are reversed", func(t *testing.T) {
		_, err := objectSpan("} backwards {")

		var extractionErr *ExtractionError
		assert.ErrorAs(t, err, &extractionErr)
	})
}

func TestExtractObject(t *testing.T) {
	t.Run("should decode a valid object into a mapping", func(t *testing.T) {
		node, err := ExtractObject(`Here you go: {"title": "Soup", "servings": 2} Done.`)

		require.NoError(t, err)
		assert.Equal(t, KindMapping, node.Kind())

		title, ok := node.Get("title")
		require.True(t, ok)
		s, err := title.AsString()
		require.NoError(t, err)
		assert.Equal(t, "Soup", s)
	})

	t.Run("should fail with the decode error as cause on malformed syntax", func(t *testing.T) {
		_, err := ExtractObject(`{"title": "Broken`)

		var extractionErr *ExtractionError
		require.ErrorAs(t, err, &extractionErr)
		assert.Contains(t, extractionErr.Reason, "malformed")
		assert.NotNil(t, errors.Unwrap(err))
	})

	t.Run("should fail on plain text", func(t *testing.T) {
		_, err := ExtractObject("the model refused to answer")

		var extractionErr *ExtractionError
		assert.ErrorAs(t, err, &extractionErr)
	})

	t.Run("should keep numbers as json.Number for exact integer checks", func(t *testing.T) {
		node, err := ExtractObject(`{"servings": 4}`)
		require.NoError(t, err)

		servings, ok := node.Get("servings")
		require.True(t, ok)
		i, err := servings.AsInt()
		require.NoError(t, err)
		assert.Equal(t, 4, i)
	})
}

func TestNodeAccessors(t *testing.T) {
	node, err := ExtractObject(`{
		"s": "text", "n": 3, "f": 1.5, "b": true,
		"seq": ["a", "b"], "m": {"k": "v"}, "nil": null
	}`)
	require.NoError(t, err)

	t.Run("should report kind mismatches as ValidationError", func(t *testing.T) {
		s, _ := node.Get("s")
		_, err := s.AsInt()

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, InvalidType, validationErr.Kind)
	})

	t.Run("should reject fractional numbers as integers", func(t *testing.T) {
		f, _ := node.Get("f")
		_, err := f.AsInt()
		assert.Error(t, err)
	})

	t.Run("should treat null values as absent", func(t *testing.T) {
		_, ok := node.Get("nil")
		assert.False(t, ok)
	})

	t.Run("should treat missing keys as absent", func(t *testing.T) {
		_, ok := node.Get("nope")
		assert.False(t, ok)
	})

	t.Run("should expose sequences and mappings", func(t *testing.T) {
		seqNode, _ := node.Get("seq")
		seq, err := seqNode.AsSequence()
		require.NoError(t, err)
		assert.Len(t, seq, 2)

		mNode, _ := node.Get("m")
		m, err := mNode.AsMapping()
		require.NoError(t, err)
		assert.Contains(t, m, "k")

		b, _ := node.Get("b")
		v, err := b.AsBool()
		require.NoError(t, err)
		assert.True(t, v)
	})
}
