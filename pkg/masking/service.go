// Package masking scrubs credential-shaped strings before they reach
// durable storage. The event log and session memory outlive any secret
// rotation, so everything written to them passes through here first.
package masking

import (
	"fmt"
	"regexp"
)

// Service applies masking patterns to text and structured metadata.
// Created once at startup; thread-safe and stateless aside from the
// compiled patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService creates a masking service with the built-in pattern set.
func NewService() *Service {
	return &Service{patterns: compileBuiltinPatterns()}
}

// AddPattern registers an additional custom pattern. Used for per-repo
// secrets that do not match the built-in shapes.
func (s *Service) AddPattern(name, pattern, replacement string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("masking: invalid pattern %q: %w", name, err)
	}
	s.patterns = append(s.patterns, &CompiledPattern{
		Name:        name,
		Regex:       re,
		Replacement: replacement,
	})
	return nil
}

// MaskText applies every pattern to the input.
func (s *Service) MaskText(text string) string {
	if text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskMetadata deep-walks a metadata map and masks every string leaf.
// The input is not modified.
func (s *Service) MaskMetadata(metadata map[string]interface{}) map[string]interface{} {
	if metadata == nil {
		return nil
	}
	out := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return s.MaskText(val)
	case map[string]interface{}:
		return s.MaskMetadata(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}
