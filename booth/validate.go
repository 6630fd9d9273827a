package booth

import (
	"fmt"
	"strings"
)

const (
	// MaxAudioSizeBytes caps one uploaded recording at 10 MiB.
	MaxAudioSizeBytes = 10 << 20
	// MinDurationSeconds is the shortest recording the booth accepts.
	MinDurationSeconds = 60.0
)

// uploadMimeTypes are the audio containers the plain-upload flow
// accepts. wav and mp4/m4a each have two MIME spellings in the wild.
var uploadMimeTypes = []string{
	"audio/mpeg",
	"audio/wav",
	"audio/x-wav",
	"audio/mp4",
	"audio/x-m4a",
	"audio/ogg",
}

// enhanceMimeTypes additionally accepts webm and video/mp4: browsers
// commonly tag MediaRecorder MP4 audio captures with a video MIME type.
var enhanceMimeTypes = append([]string{
	"audio/webm",
	"video/mp4",
}, uploadMimeTypes...)

// ValidateUploadSubmission checks a plain-upload submission. Email is
// optional in this flow.
func ValidateUploadSubmission(sub Submission) *ValidationError {
	return validate(sub, uploadMimeTypes, false)
}

// ValidateEnhancementSubmission checks an enhancement submission.
func ValidateEnhancementSubmission(sub Submission) *ValidationError {
	return validate(sub, enhanceMimeTypes, true)
}

func validate(sub Submission, allowedTypes []string, requireEmail bool) *ValidationError {
	if strings.TrimSpace(sub.DisplayName) == "" {
		return &ValidationError{
			Code:    CodeMissingField,
			Message: "name is required",
		}
	}

	if requireEmail && strings.TrimSpace(sub.ContactEmail) == "" {
		return &ValidationError{
			Code:    CodeMissingField,
			Message: "email is required",
		}
	}

	if len(sub.Audio.Data) == 0 {
		return &ValidationError{
			Code:    CodeMissingField,
			Message: "audio file is required",
		}
	}

	mimeType := normalizeMimeType(sub.Audio.MimeType)
	if !contains(allowedTypes, mimeType) {
		return &ValidationError{
			Code:    CodeInvalidFileType,
			Message: fmt.Sprintf("unsupported file type %q", sub.Audio.MimeType),
		}
	}

	if len(sub.Audio.Data) > MaxAudioSizeBytes {
		return &ValidationError{
			Code:    CodeFileTooLarge,
			Message: "audio file exceeds the 10 MB limit",
		}
	}

	// The duration is the browser's measurement, not re-derived from
	// the decoded audio, so a doctored client could lie here.
	if sub.ClientDuration < MinDurationSeconds {
		return &ValidationError{
			Code:    CodeDurationTooShort,
			Message: fmt.Sprintf("recording must be at least %.0f seconds", MinDurationSeconds),
		}
	}

	return nil
}

// normalizeMimeType strips any parameter suffix (";codecs=opus" etc.)
// before comparing against the allow-list.
func normalizeMimeType(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
