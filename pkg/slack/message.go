package slack

import (
	"fmt"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var taskStatusEmoji = map[string]string{
	"completed":     ":white_check_mark:",
	"failed":        ":x:",
	"waiting_human": ":raised_hand:",
}

var taskStatusLabel = map[string]string{
	"completed":     "Task Completed",
	"failed":        "Task Failed",
	"waiting_human": "Task Needs Attention",
}

var jobStatusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"partial":   ":warning:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var jobStatusLabel = map[string]string{
	"completed": "Job Completed",
	"partial":   "Job Partially Completed",
	"failed":    "Job Failed",
	"cancelled": "Job Cancelled",
}

func taskURL(taskID, dashboardURL string) string {
	return fmt.Sprintf("%s/tasks/%s", dashboardURL, taskID)
}

func jobURL(jobID, dashboardURL string) string {
	return fmt.Sprintf("%s/jobs/%s", dashboardURL, jobID)
}

// BuildJobStartedMessage creates Block Kit blocks for a job announcement.
// The text embeds the job fingerprint so later notifications can find
// this message and thread under it.
func BuildJobStartedMessage(input JobStartedInput, dashboardURL string) []goslack.Block {
	url := jobURL(input.JobID, dashboardURL)
	text := fmt.Sprintf(":rocket: *Job started* — %s\n%d task(s) queued for `%s`\n<%s|View in Dashboard>",
		jobFingerprint(input.JobID), input.TaskCount, input.Repo, url)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildTaskFinishedMessage creates Block Kit blocks for a terminal task
// notification.
func BuildTaskFinishedMessage(input TaskFinishedInput, dashboardURL string) []goslack.Block {
	emoji := taskStatusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := taskStatusLabel[input.Status]
	if label == "" {
		label = "Task " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s* — `%s` #%d", emoji, label, input.Repo, input.IssueNumber)

	var blocks []goslack.Block
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
		nil, nil,
	))

	if input.PRURL != "" {
		prText := fmt.Sprintf("*Pull request:* <%s|%s>", input.PRURL, input.PRURL)
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, prText, false, false),
			nil, nil,
		))
	}

	if input.Status == "failed" && input.LastError != "" {
		errText := fmt.Sprintf("*Error:*\n%s", truncateForSlack(input.LastError))
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, errText, false, false),
			nil, nil,
		))
	}

	url := taskURL(input.TaskID, dashboardURL)
	buttonText := "View Task"
	if input.Status == "waiting_human" {
		buttonText = "Review Now"
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildJobFinishedMessage creates Block Kit blocks for a terminal job
// notification.
func BuildJobFinishedMessage(input JobFinishedInput, dashboardURL string) []goslack.Block {
	emoji := jobStatusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := jobStatusLabel[input.Status]
	if label == "" {
		label = "Job " + input.Status
	}

	text := fmt.Sprintf("%s *%s* — `%s`\n%d completed, %d failed of %d task(s)",
		emoji, label, input.Repo, input.Completed, input.Failed, input.Total)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Job", false, false))
	btn.URL = jobURL(input.JobID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// truncateForSlack caps text at the Block Kit limit without splitting a
// multi-byte rune.
func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — full output in dashboard)_"
}
