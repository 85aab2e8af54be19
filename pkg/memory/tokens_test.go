package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, CountTokens(""))
	assert.Positive(t, CountTokens("fix the login handler"))

	short := CountTokens("one paragraph of context")
	long := CountTokens(strings.Repeat("one paragraph of context ", 50))
	assert.Greater(t, long, short)
}

func TestEstimateFast(t *testing.T) {
	assert.Equal(t, 0, estimateFast("   "))
	assert.Equal(t, 1, estimateFast("go"))

	// Word count floors the estimate for terse text.
	assert.Equal(t, 4, estimateFast("a b c d"))

	// Long runs of characters fall back to runes/4.
	assert.Equal(t, 25, estimateFast(strings.Repeat("x", 100)))
}
