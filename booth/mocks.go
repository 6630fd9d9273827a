package booth

import (
	"fmt"
	"strings"
	"time"

	"github.com/VoiceBooth-AI/voicebooth-go/elevenlabs"
)

// Hand-written fakes for the orchestrator's collaborators. Each
// records its calls and can be armed with errors; when Journal is set,
// calls append event names to it so tests can assert stage ordering.

type MockUpload struct {
	Key         string
	ContentType string
	FileName    string
	Size        int
}

type MockBlobStore struct {
	UploadErr         error
	UploadErrByPrefix map[string]error
	PresignErr        error
	UploadCalls       []MockUpload
	PresignCalls      int
	Journal           *[]string
}

func (m *MockBlobStore) Upload(data []byte, key, contentType, downloadFilename string) error {
	m.UploadCalls = append(m.UploadCalls, MockUpload{
		Key:         key,
		ContentType: contentType,
		FileName:    downloadFilename,
		Size:        len(data),
	})
	m.record("upload:" + keyPrefix(key))
	if err, ok := m.UploadErrByPrefix[keyPrefix(key)]; ok {
		return err
	}
	return m.UploadErr
}

func (m *MockBlobStore) Presign(key, downloadFilename string, expiry time.Duration) (string, error) {
	m.PresignCalls++
	m.record("presign:" + keyPrefix(key))
	if m.PresignErr != nil {
		return "", m.PresignErr
	}
	return fmt.Sprintf("https://blobs.example.com/%s?signed=1", key), nil
}

func (m *MockBlobStore) record(event string) {
	if m.Journal != nil {
		*m.Journal = append(*m.Journal, event)
	}
}

func keyPrefix(key string) string {
	if i := strings.Index(key, "/"); i >= 0 {
		return key[:i]
	}
	return key
}

type MockVoiceAI struct {
	VoiceID         string
	CloneErr        error
	RemixErr        error
	DeleteErr       error
	RemixAudio      []byte
	RemixDuration   float64
	CloneCalls      int
	RemixCalls      int
	DeleteCalls     int
	CloneLabels     []string
	DeletedVoiceIDs []string
	Journal         *[]string
}

func (m *MockVoiceAI) CloneVoice(audio []byte, fileName, label string) (string, error) {
	m.CloneCalls++
	m.CloneLabels = append(m.CloneLabels, label)
	m.record("clone")
	if m.CloneErr != nil {
		return "", m.CloneErr
	}
	if m.VoiceID == "" {
		return "mock-voice-id", nil
	}
	return m.VoiceID, nil
}

func (m *MockVoiceAI) RemixVoice(voiceID, directive, referenceText string) (elevenlabs.RemixResult, error) {
	m.RemixCalls++
	m.record("remix")
	if m.RemixErr != nil {
		return elevenlabs.RemixResult{}, m.RemixErr
	}
	audio := m.RemixAudio
	if audio == nil {
		audio = []byte("mock remixed audio")
	}
	return elevenlabs.RemixResult{
		Audio:           audio,
		DurationSeconds: m.RemixDuration,
	}, nil
}

func (m *MockVoiceAI) DeleteVoice(voiceID string) error {
	m.DeleteCalls++
	m.DeletedVoiceIDs = append(m.DeletedVoiceIDs, voiceID)
	m.record("delete")
	return m.DeleteErr
}

func (m *MockVoiceAI) record(event string) {
	if m.Journal != nil {
		*m.Journal = append(*m.Journal, event)
	}
}

type MockNotifier struct {
	SendErr error
	Records []NotificationRecord
	Journal *[]string
}

func (m *MockNotifier) SendSubmissionNotification(record NotificationRecord) error {
	m.Records = append(m.Records, record)
	if m.Journal != nil {
		*m.Journal = append(*m.Journal, "notify")
	}
	return m.SendErr
}
