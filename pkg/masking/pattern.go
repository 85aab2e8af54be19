package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns cover the credential shapes that show up in issue
// bodies, CI output, and agent transcripts. Order matters: specific
// token formats run before the generic key/value sweeps.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{
		name:        "github_token",
		pattern:     `\b(?:ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36,}\b`,
		replacement: "[MASKED_GITHUB_TOKEN]",
	},
	{
		name:        "anthropic_key",
		pattern:     `\bsk-ant-[A-Za-z0-9_-]{20,}\b`,
		replacement: "[MASKED_API_KEY]",
	},
	{
		name:        "openai_key",
		pattern:     `\bsk-[A-Za-z0-9]{20,}\b`,
		replacement: "[MASKED_API_KEY]",
	},
	{
		name:        "bearer_token",
		pattern:     `(?i)\bbearer\s+[A-Za-z0-9_\-\.=]{16,}`,
		replacement: "Bearer [MASKED_TOKEN]",
	},
	{
		name:        "private_key_block",
		pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		replacement: "[MASKED_PRIVATE_KEY]",
	},
	{
		name:        "url_credentials",
		pattern:     `(?i)\b([a-z][a-z0-9+\-.]*://)[^/\s:@]+:[^/\s:@]+@`,
		replacement: "$1[MASKED_CREDENTIALS]@",
	},
	{
		name:        "generic_secret_assignment",
		pattern:     `(?i)\b(password|passwd|secret|api[_-]?key|access[_-]?token|auth[_-]?token)\s*[:=]\s*['"]?[^\s'"]{8,}['"]?`,
		replacement: "$1=[MASKED]",
	},
}

// compileBuiltinPatterns compiles the built-in set. Invalid patterns are
// logged and skipped rather than failing startup.
func compileBuiltinPatterns() []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        p.name,
			Regex:       re,
			Replacement: p.replacement,
		})
	}
	return compiled
}
