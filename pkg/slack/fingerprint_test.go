package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "Fix LOGIN handler in acme/widgets",
			expected: "fix login handler in acme/widgets",
		},
		{
			name:     "collapse whitespace",
			input:    "job:abc   started\t\tfor\n\nacme/widgets",
			expected: "job:abc started for acme/widgets",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestJobFingerprint(t *testing.T) {
	assert.Equal(t, "job:abc-123", jobFingerprint("abc-123"))
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "job started",
					Attachments: []goslack.Attachment{
						{Text: "3 tasks queued"},
					},
				},
			},
			expected: "job started 3 tasks queued",
		},
		{
			name: "text with attachment fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "job started",
					Attachments: []goslack.Attachment{
						{Fallback: "fallback text"},
					},
				},
			},
			expected: "job started fallback text",
		},
		{
			name: "section blocks included",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Blocks: goslack.Blocks{
						BlockSet: []goslack.Block{
							goslack.NewSectionBlock(
								goslack.NewTextBlockObject(goslack.MarkdownType, "job:xyz started", false, false),
								nil, nil,
							),
						},
					},
				},
			},
			expected: "job:xyz started",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}
