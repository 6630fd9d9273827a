package booth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestOrchestrator(store *MockBlobStore, voice VoiceAI, notifier *MockNotifier) *Orchestrator {
	return NewOrchestrator(store, voice, notifier, 7*24*time.Hour)
}

func TestProcessEnhancement_ValidationHasNoSideEffects(t *testing.T) {
	store := &MockBlobStore{}
	voice := &MockVoiceAI{}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	sub := validSubmission()
	sub.ClientDuration = 30

	_, err := orchestrator.ProcessEnhancement(sub)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected a ValidationError, got %v", err)
	}
	if validationErr.Code != CodeDurationTooShort {
		t.Errorf("Expected DurationTooShort, got %s", validationErr.Code)
	}
	if len(store.UploadCalls) != 0 || store.PresignCalls != 0 {
		t.Error("Expected no storage calls for a rejected submission")
	}
	if voice.CloneCalls != 0 {
		t.Error("Expected no provider calls for a rejected submission")
	}
	if len(notifier.Records) != 0 {
		t.Error("Expected no notification for a rejected submission")
	}
}

func TestProcessEnhancement_ProviderNotConfigured(t *testing.T) {
	store := &MockBlobStore{}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, nil, notifier)

	result, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if result.Enhanced != nil {
		t.Error("Expected no enhanced artifact without a provider")
	}
	if result.EnhancementError != "voice enhancement not configured" {
		t.Errorf("Expected not-configured annotation, got %q", result.EnhancementError)
	}
	if result.Raw.DownloadURL == "" {
		t.Error("Expected a raw download URL")
	}
	if len(store.UploadCalls) != 1 {
		t.Fatalf("Expected exactly one upload, got %d", len(store.UploadCalls))
	}
	if len(notifier.Records) != 1 {
		t.Fatalf("Expected exactly one notification, got %d", len(notifier.Records))
	}
	if notifier.Records[0].EnhancementError != "voice enhancement not configured" {
		t.Errorf("Expected notification to carry the not-configured annotation, got %q", notifier.Records[0].EnhancementError)
	}
}

func TestProcessEnhancement_CloneFailureDegrades(t *testing.T) {
	store := &MockBlobStore{}
	voice := &MockVoiceAI{CloneErr: errors.New("quota exceeded")}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	result, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if !strings.Contains(result.EnhancementError, "voice cloning failed") {
		t.Errorf("Expected cloning failure annotation, got %q", result.EnhancementError)
	}
	if voice.DeleteCalls != 0 {
		t.Error("Expected no cleanup when no voice was cloned")
	}
	if result.VoiceID != "" {
		t.Errorf("Expected no voice ID, got %q", result.VoiceID)
	}
}

func TestProcessEnhancement_RemixFailureCleansUpClone(t *testing.T) {
	store := &MockBlobStore{}
	voice := &MockVoiceAI{VoiceID: "voice-42", RemixErr: errors.New("model overloaded")}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	result, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if !strings.Contains(result.EnhancementError, "voice remix failed") {
		t.Errorf("Expected remix failure annotation, got %q", result.EnhancementError)
	}
	if voice.DeleteCalls != 1 {
		t.Fatalf("Expected exactly one cleanup call, got %d", voice.DeleteCalls)
	}
	if voice.DeletedVoiceIDs[0] != "voice-42" {
		t.Errorf("Expected cleanup of voice-42, got %s", voice.DeletedVoiceIDs[0])
	}
	if len(notifier.Records) != 1 {
		t.Fatalf("Expected one notification, got %d", len(notifier.Records))
	}
	record := notifier.Records[0]
	if record.Raw == nil {
		t.Error("Expected the notification to still reference the raw artifact")
	}
	if !strings.Contains(record.EnhancementError, "voice remix failed") {
		t.Errorf("Expected the notification to carry the remix failure, got %q", record.EnhancementError)
	}
}

func TestProcessEnhancement_EnhancedUploadFailureDegrades(t *testing.T) {
	store := &MockBlobStore{
		UploadErrByPrefix: map[string]error{"enhanced": errors.New("bucket unavailable")},
	}
	voice := &MockVoiceAI{}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	result, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if !strings.Contains(result.EnhancementError, "failed to store enhanced audio") {
		t.Errorf("Expected enhanced-storage failure annotation, got %q", result.EnhancementError)
	}
	if result.Enhanced != nil {
		t.Error("Expected no enhanced artifact")
	}
	if result.Raw.DownloadURL == "" {
		t.Error("Expected the raw artifact to survive")
	}
	if voice.DeleteCalls != 1 {
		t.Errorf("Expected exactly one cleanup call, got %d", voice.DeleteCalls)
	}
}

func TestProcessEnhancement_FullSuccess(t *testing.T) {
	journal := []string{}
	store := &MockBlobStore{Journal: &journal}
	voice := &MockVoiceAI{VoiceID: "voice-7", RemixDuration: 28.5, Journal: &journal}
	notifier := &MockNotifier{Journal: &journal}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	result, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if result.EnhancementError != "" {
		t.Errorf("Expected no enhancement error, got %q", result.EnhancementError)
	}
	if result.Enhanced == nil {
		t.Fatal("Expected an enhanced artifact")
	}
	if result.Enhanced.DurationSeconds != 28.5 {
		t.Errorf("Expected the provider-reported duration, got %f", result.Enhanced.DurationSeconds)
	}
	if result.VoiceID != "voice-7" {
		t.Errorf("Expected voice-7, got %q", result.VoiceID)
	}
	if len(store.UploadCalls) != 2 {
		t.Fatalf("Expected two uploads, got %d", len(store.UploadCalls))
	}
	if store.UploadCalls[1].ContentType != "audio/mpeg" {
		t.Errorf("Expected the enhanced artifact to be stored as audio/mpeg, got %s", store.UploadCalls[1].ContentType)
	}

	record := notifier.Records[0]
	if record.Raw == nil || record.Enhanced == nil {
		t.Fatal("Expected the notification to carry both artifacts")
	}
	if record.EnhancementError != "" {
		t.Errorf("Expected no enhancement error in the notification, got %q", record.EnhancementError)
	}

	expectedOrder := []string{
		"upload:recordings", "presign:recordings",
		"clone", "remix",
		"upload:enhanced", "presign:enhanced",
		"notify", "delete",
	}
	if len(journal) != len(expectedOrder) {
		t.Fatalf("Expected %d events, got %d: %v", len(expectedOrder), len(journal), journal)
	}
	for i, event := range expectedOrder {
		if journal[i] != event {
			t.Errorf("Expected event %d to be %s, got %s (journal: %v)", i, event, journal[i], journal)
		}
	}
}

func TestProcessEnhancement_RawStorageFailureIsFatal(t *testing.T) {
	store := &MockBlobStore{UploadErr: errors.New("access denied")}
	voice := &MockVoiceAI{}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	_, err := orchestrator.ProcessEnhancement(validSubmission())

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Expected a StorageError, got %v", err)
	}
	if voice.CloneCalls != 0 {
		t.Error("Expected no provider call after a fatal storage failure")
	}
	if len(notifier.Records) != 1 {
		t.Fatalf("Expected a courtesy failure notification, got %d", len(notifier.Records))
	}
	record := notifier.Records[0]
	if record.FatalError == "" {
		t.Error("Expected the failure notification to carry a fatal error")
	}
	if record.Raw != nil {
		t.Error("Expected no raw artifact in the failure notification")
	}
	if record.Name != "Ada Lovelace" || record.Email != "ada@example.com" {
		t.Errorf("Expected requester identity in the failure notification, got %q/%q", record.Name, record.Email)
	}
}

func TestProcessEnhancement_NotifierFailureDoesNotFailRun(t *testing.T) {
	store := &MockBlobStore{}
	notifier := &MockNotifier{SendErr: errors.New("webhook gone")}
	orchestrator := newTestOrchestrator(store, nil, notifier)

	result, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Expected success despite notifier failure, got %v", err)
	}
	if result.Raw.DownloadURL == "" {
		t.Error("Expected a raw download URL")
	}
}

// panickyNotifier stands in for a notifier that blows up instead of
// returning an error.
type panickyNotifier struct{}

func (panickyNotifier) SendSubmissionNotification(record NotificationRecord) error {
	panic("notifier exploded")
}

func TestProcessEnhancement_CleanupRunsWhenNotifierPanics(t *testing.T) {
	store := &MockBlobStore{}
	voice := &MockVoiceAI{VoiceID: "voice-9"}
	orchestrator := NewOrchestrator(store, voice, panickyNotifier{}, time.Hour)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected the notifier panic to propagate")
		}
		if voice.DeleteCalls != 1 {
			t.Errorf("Expected the cloned voice to be deleted despite the panic, got %d delete calls", voice.DeleteCalls)
		}
		if voice.DeletedVoiceIDs[0] != "voice-9" {
			t.Errorf("Expected cleanup of voice-9, got %s", voice.DeletedVoiceIDs[0])
		}
	}()

	orchestrator.ProcessEnhancement(validSubmission())
}

func TestProcessUpload_SkipsAIEntirely(t *testing.T) {
	store := &MockBlobStore{}
	voice := &MockVoiceAI{}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, voice, notifier)

	sub := validSubmission()
	sub.ContactEmail = ""

	result, err := orchestrator.ProcessUpload(sub)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if voice.CloneCalls != 0 || voice.RemixCalls != 0 || voice.DeleteCalls != 0 {
		t.Error("Expected the plain upload flow to never touch the voice provider")
	}
	if result.EnhancementError != "" {
		t.Errorf("Expected no enhancement annotation in the plain flow, got %q", result.EnhancementError)
	}
	if len(notifier.Records) != 1 {
		t.Fatalf("Expected exactly one notification, got %d", len(notifier.Records))
	}
}

func TestProcessEnhancement_DistinctKeysPerRun(t *testing.T) {
	store := &MockBlobStore{}
	notifier := &MockNotifier{}
	orchestrator := newTestOrchestrator(store, nil, notifier)

	first, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := orchestrator.ProcessEnhancement(validSubmission())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if first.Raw.Key == second.Raw.Key {
		t.Errorf("Expected distinct storage keys, both were %q", first.Raw.Key)
	}
	if first.RunID == second.RunID {
		t.Error("Expected distinct run IDs")
	}
}
