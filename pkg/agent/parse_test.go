package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"bare object",
			`{"verdict": "VALID"}`,
			`{"verdict": "VALID"}`,
		},
		{
			"prose around object",
			"Here is my assessment:\n{\"verdict\": \"VALID\"}\nLet me know.",
			`{"verdict": "VALID"}`,
		},
		{
			"code fence",
			"```json\n{\"diff\": \"x\"}\n```",
			`{"diff": "x"}`,
		},
		{
			"nested objects",
			`{"a": {"b": {"c": 1}}, "d": 2}`,
			`{"a": {"b": {"c": 1}}, "d": 2}`,
		},
		{
			"braces inside strings ignored",
			`{"plan": ["wrap in { } blocks"], "n": 1}`,
			`{"plan": ["wrap in { } blocks"], "n": 1}`,
		},
		{
			"escaped quote inside string",
			`{"msg": "say \"}\" aloud"}`,
			`{"msg": "say \"}\" aloud"}`,
		},
		{
			"first object wins",
			`{"first": 1} {"second": 2}`,
			`{"first": 1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_Errors(t *testing.T) {
	_, err := ExtractJSON("no object here")
	assert.ErrorIs(t, err, ErrUnparsableOutput)

	_, err = ExtractJSON(`{"unterminated": "object"`)
	assert.ErrorIs(t, err, ErrUnparsableOutput)
}

func TestRepairJSON(t *testing.T) {
	fixed, err := repairJSON(`{"plan": ["a", "b",], "done": true}`)
	require.NoError(t, err)
	assert.Contains(t, fixed, `"done"`)
	assert.NotContains(t, fixed, ",]")

	fixed, err = repairJSON(`{'verdict': 'VALID'}`)
	require.NoError(t, err)
	assert.Contains(t, fixed, `"verdict"`)
}
