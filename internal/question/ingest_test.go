package question

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestWellFormed(t *testing.T) {
	t.Parallel()

	items := Ingest([]Entry{
		Pair("Is the sky blue?", true),
		{Value: map[string]any{"question": " Do fish live on land? ", "answer": false}},
		{Value: []any{"Is zero falsy?", 0}},
		{Value: []any{"Is one truthy?", float64(1)}},
	})

	require.Len(t, items, 4)
	for i, item := range items {
		assert.Truef(t, item.Valid(), "item %d should be valid: %+v", i, item.Invalid)
		assert.Equal(t, i+1, item.Position)
	}
	assert.Equal(t, Question{Text: "Is the sky blue?", Expected: true}, items[0].Question)
	assert.Equal(t, Question{Text: "Do fish live on land?", Expected: false}, items[1].Question)
	assert.False(t, items[2].Question.Expected)
	assert.True(t, items[3].Question.Expected)
}

func TestIngestMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		raw    string
		reason string
	}{
		{name: "triple", value: []any{"Q", true, 1}, raw: `["Q",true,1]`, reason: "got 3 elements"},
		{name: "single", value: []any{"Q"}, raw: `["Q"]`, reason: "got 1 elements"},
		{name: "string", value: "Is the sky blue?", raw: `"Is the sky blue?"`, reason: "got a string"},
		{name: "null", value: nil, raw: "null", reason: "empty"},
		{name: "empty text", value: []any{"  ", true}, raw: `["  ",true]`, reason: "non-empty string"},
		{name: "text not string", value: []any{42, true}, raw: `[42,true]`, reason: "non-empty string"},
		{name: "answer string", value: []any{"Q", "yes"}, raw: `["Q","yes"]`, reason: "answer must be a boolean"},
		{name: "extra key", value: map[string]any{"question": "Q", "answer": true, "hint": "x"}, reason: "keys question and answer"},
		{name: "missing key", value: map[string]any{"question": "Q"}, reason: "keys question and answer"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items := Ingest([]Entry{Pair("ok", true), {Value: tt.value}})
			require.Len(t, items, 2)
			assert.True(t, items[0].Valid())

			item := items[1]
			require.False(t, item.Valid())
			assert.Equal(t, 2, item.Position)
			assert.Equal(t, 2, item.Invalid.Position)
			if tt.raw != "" {
				assert.Equal(t, tt.raw, item.Invalid.Raw)
			}
			assert.Contains(t, item.Invalid.Reason, tt.reason)
			assert.True(t, strings.HasPrefix(item.Invalid.Error(), "entry 2: "))
		})
	}
}

func TestIngestEmpty(t *testing.T) {
	items := Ingest(nil)
	assert.Empty(t, items)
	assert.Equal(t, 0, CountInvalid(items))
}

func TestCountInvalid(t *testing.T) {
	items := Ingest([]Entry{Pair("a", true), {Value: "b"}, {Value: []any{}}})
	assert.Equal(t, 2, CountInvalid(items))
}
