package agent

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ExtractJSON returns the first balanced top-level JSON object in text.
// Models wrap output in prose or fences often enough that taking the
// raw body is not reliable; scanning for the first object is.
func ExtractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object in response", ErrUnparsableOutput)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unterminated JSON object in response", ErrUnparsableOutput)
}

// repairJSON attempts to fix malformed JSON (trailing commas, single
// quotes, unescaped newlines) before giving up on a response.
func repairJSON(raw string) (string, error) {
	fixed, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnparsableOutput, err)
	}
	return fixed, nil
}
