package booth

import (
	"time"

	"github.com/VoiceBooth-AI/voicebooth-go/elevenlabs"
)

// BlobStore is the object-storage dependency of the orchestrator.
type BlobStore interface {
	Upload(data []byte, key, contentType, downloadFilename string) error
	Presign(key, downloadFilename string, expiry time.Duration) (string, error)
}

// VoiceAI is the voice-cloning dependency of the orchestrator.
type VoiceAI interface {
	CloneVoice(audio []byte, fileName, label string) (string, error)
	RemixVoice(voiceID, directive, referenceText string) (elevenlabs.RemixResult, error)
	DeleteVoice(voiceID string) error
}

// Notifier delivers one structured message per run to the team channel.
type Notifier interface {
	SendSubmissionNotification(record NotificationRecord) error
}
