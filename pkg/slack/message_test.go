package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJobStartedMessage(t *testing.T) {
	blocks := BuildJobStartedMessage(JobStartedInput{
		JobID:     "job-123",
		Repo:      "acme/widgets",
		TaskCount: 3,
	}, "https://relay.example.com")

	require.Len(t, blocks, 1)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":rocket:")
	assert.Contains(t, section.Text.Text, "Job started")
	assert.Contains(t, section.Text.Text, "3 task(s)")
	assert.Contains(t, section.Text.Text, "acme/widgets")
	assert.Contains(t, section.Text.Text, "https://relay.example.com/jobs/job-123")
	// The fingerprint must survive into the rendered text so terminal
	// notifications can find this message for threading.
	assert.Contains(t, normalizeText(section.Text.Text), normalizeText(jobFingerprint("job-123")))
}

func TestBuildTaskFinishedMessage_Completed(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:      "task-1",
		Repo:        "acme/widgets",
		IssueNumber: 42,
		Status:      "completed",
		PRURL:       "https://git.example.com/acme/widgets/pull/7",
	}
	blocks := BuildTaskFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Task Completed")
	assert.Contains(t, header.Text.Text, "acme/widgets")
	assert.Contains(t, header.Text.Text, "#42")

	pr := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, pr.Text.Text, "https://git.example.com/acme/widgets/pull/7")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Task", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/tasks/task-1")
}

func TestBuildTaskFinishedMessage_Failed(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:      "task-2",
		Repo:        "acme/widgets",
		IssueNumber: 43,
		Status:      "failed",
		LastError:   "agent timeout after 3 attempts",
	}
	blocks := BuildTaskFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Task Failed")

	errBlock := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, errBlock.Text.Text, "agent timeout after 3 attempts")
}

func TestBuildTaskFinishedMessage_WaitingHuman(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:      "task-3",
		Repo:        "acme/widgets",
		IssueNumber: 44,
		Status:      "waiting_human",
		PRURL:       "https://git.example.com/acme/widgets/pull/9",
	}
	blocks := BuildTaskFinishedMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":raised_hand:")
	assert.Contains(t, header.Text.Text, "Task Needs Attention")

	action := blocks[len(blocks)-1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "Review Now", btn.Text.Text)
}

func TestBuildTaskFinishedMessage_UnknownStatus(t *testing.T) {
	blocks := BuildTaskFinishedMessage(TaskFinishedInput{
		TaskID: "task-4",
		Status: "tests_failed",
	}, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":question:")
	assert.Contains(t, header.Text.Text, "Task tests_failed")
}

func TestBuildJobFinishedMessage(t *testing.T) {
	tests := []struct {
		status string
		emoji  string
		label  string
	}{
		{"completed", ":white_check_mark:", "Job Completed"},
		{"partial", ":warning:", "Job Partially Completed"},
		{"failed", ":x:", "Job Failed"},
		{"cancelled", ":no_entry_sign:", "Job Cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			blocks := BuildJobFinishedMessage(JobFinishedInput{
				JobID:     "job-9",
				Repo:      "acme/widgets",
				Status:    tt.status,
				Completed: 2,
				Failed:    1,
				Total:     3,
			}, "https://dash.example.com")

			require.Len(t, blocks, 2)
			header := blocks[0].(*goslack.SectionBlock)
			assert.Contains(t, header.Text.Text, tt.emoji)
			assert.Contains(t, header.Text.Text, tt.label)
			assert.Contains(t, header.Text.Text, "2 completed, 1 failed of 3 task(s)")

			action := blocks[1].(*goslack.ActionBlock)
			btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
			assert.Contains(t, btn.URL, "https://dash.example.com/jobs/job-9")
		})
	}
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
