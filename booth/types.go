package booth

import (
	"fmt"
	"time"
)

// Audio is the uploaded payload plus the metadata the browser declared
// for it.
type Audio struct {
	Data     []byte
	MimeType string
	FileName string
}

// Submission is the input to one orchestration run. ClientDuration is
// the recording length in seconds as measured by the browser; it is
// trusted as-is (see ValidateSubmission).
type Submission struct {
	DisplayName    string
	ContactEmail   string
	Audio          Audio
	ClientDuration float64
}

// Artifact is one durably stored audio object.
type Artifact struct {
	Key             string
	DownloadURL     string
	FileName        string
	SizeBytes       int
	DurationSeconds float64
}

// SizeMiB renders the artifact size in MiB with two decimals, the
// format used by both the API response and the notification.
func (a Artifact) SizeMiB() string {
	return fmt.Sprintf("%.2f", float64(a.SizeBytes)/(1<<20))
}

// Result describes what one run produced. Enhanced is nil and
// EnhancementError is set when the AI stage failed or was skipped;
// neither makes the run a failure.
type Result struct {
	RunID            string
	Raw              Artifact
	Enhanced         *Artifact
	VoiceID          string
	EnhancementError string
}

// ArtifactSummary is the artifact view carried in a notification.
type ArtifactSummary struct {
	DownloadURL     string
	FileName        string
	SizeMiB         string
	DurationSeconds float64
}

// NotificationRecord is the single outbound message summarizing a run.
// Exactly one is emitted per run that got past validation, including
// runs that died on raw storage (FatalError set, no artifacts).
type NotificationRecord struct {
	RunID            string
	Name             string
	Email            string
	SubmittedAt      time.Time
	Raw              *ArtifactSummary
	Enhanced         *ArtifactSummary
	EnhancementError string
	FatalError       string
}

type ValidationCode string

const (
	CodeMissingField     ValidationCode = "MissingField"
	CodeInvalidFileType  ValidationCode = "InvalidFileType"
	CodeFileTooLarge     ValidationCode = "FileTooLarge"
	CodeDurationTooShort ValidationCode = "DurationTooShort"
)

// ValidationError is a structured rejection of a submission. It is
// produced before any side effect occurs.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError marks a fatal failure to persist or presign the raw
// artifact. It aborts the run.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func summarize(a Artifact) *ArtifactSummary {
	return &ArtifactSummary{
		DownloadURL:     a.DownloadURL,
		FileName:        a.FileName,
		SizeMiB:         a.SizeMiB(),
		DurationSeconds: a.DurationSeconds,
	}
}
