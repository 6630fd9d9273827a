package slack

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/VoiceBooth-AI/voicebooth-go/booth"
)

// SendSubmissionNotification delivers the single notification for one
// booth run: who submitted, when, the download links for whichever
// artifacts exist, and the enhancement or fatal failure when something
// broke.
func (c *Client) SendSubmissionNotification(record booth.NotificationRecord) error {
	message := c.buildSubmissionMessage(record)

	if err := c.sendRequest(message); err != nil {
		return fmt.Errorf("failed to send submission notification: %w", err)
	}

	log.Info().
		Str("run_id", record.RunID).
		Str("name", record.Name).
		Msg("Submission notification sent")

	return nil
}

func (c *Client) buildSubmissionMessage(record booth.NotificationRecord) Message {
	email := record.Email
	if email == "" {
		email = "-"
	}

	blocks := []Block{
		headerBlock("New voice booth submission"),
		fieldsBlock(
			mrkdwn(fmt.Sprintf("*Name:*\n%s", record.Name)),
			mrkdwn(fmt.Sprintf("*Email:*\n%s", email)),
			mrkdwn(fmt.Sprintf("*Submitted:*\n%s", record.SubmittedAt.Format("2006-01-02 15:04:05 MST"))),
			mrkdwn(fmt.Sprintf("*Run:*\n%s", record.RunID)),
		),
	}

	if record.Raw != nil {
		blocks = append(blocks, sectionBlock(artifactLine("Raw recording", record.Raw)))
	}
	if record.Enhanced != nil {
		blocks = append(blocks, sectionBlock(artifactLine("Enhanced recording", record.Enhanced)))
	}
	if record.EnhancementError != "" {
		blocks = append(blocks, sectionBlock(fmt.Sprintf(":warning: *Enhancement failed:* %s", record.EnhancementError)))
	}
	if record.FatalError != "" {
		blocks = append(blocks, sectionBlock(fmt.Sprintf(":x: *Submission failed:* %s", record.FatalError)))
	}

	fallback := fmt.Sprintf("New voice booth submission from %s", record.Name)
	if record.FatalError != "" {
		fallback = fmt.Sprintf("Voice booth submission from %s failed", record.Name)
	}

	return Message{
		Text:   fallback,
		Blocks: blocks,
	}
}

func artifactLine(title string, artifact *booth.ArtifactSummary) string {
	return fmt.Sprintf("*%s:* <%s|%s> (%s MB, %.0f s)",
		title, artifact.DownloadURL, artifact.FileName, artifact.SizeMiB, artifact.DurationSeconds)
}
