package booth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ReferenceTranscript is the fixed text every enhanced rendering
// speaks, so booth staff can compare submissions against each other.
const ReferenceTranscript = "Hi, thanks for stopping by our booth today. " +
	"I just recorded this sample in about a minute, and what you are hearing " +
	"now is the same voice after an AI enhancement pass. Every product demo " +
	"sounds better when the story behind it is told clearly, and that is " +
	"exactly what we help teams do. If you would like to hear what your own " +
	"voice can sound like, come find us. We would love to show you more."

// EnhancementDirective steers the remix toward a cleaned-up rendering
// of the same speaker rather than a different voice.
const EnhancementDirective = "Increase the clarity and energy of this voice " +
	"while preserving its original timbre, accent, and pacing. The result " +
	"should sound like the same person speaking confidently into a studio " +
	"microphone."

const notConfiguredMessage = "voice enhancement not configured"

// Orchestrator drives one submission through validation, storage,
// best-effort enhancement, notification, and cleanup. All collaborators
// are injected; a nil VoiceAI disables the enhancement stage.
type Orchestrator struct {
	store         BlobStore
	voice         VoiceAI
	notifier      Notifier
	presignExpiry time.Duration
}

func NewOrchestrator(store BlobStore, voice VoiceAI, notifier Notifier, presignExpiry time.Duration) *Orchestrator {
	return &Orchestrator{
		store:         store,
		voice:         voice,
		notifier:      notifier,
		presignExpiry: presignExpiry,
	}
}

// ProcessEnhancement runs the full pipeline: store the raw recording,
// attempt the clone/remix/store enhancement, notify, clean up the
// cloned voice. Enhancement failures degrade the result instead of
// failing the run; only validation and raw-storage failures return an
// error.
func (o *Orchestrator) ProcessEnhancement(sub Submission) (*Result, error) {
	if verr := ValidateEnhancementSubmission(sub); verr != nil {
		return nil, verr
	}
	return o.run(sub, true)
}

// ProcessUpload runs the plain flow: store the raw recording and
// notify. No AI stage is attempted.
func (o *Orchestrator) ProcessUpload(sub Submission) (*Result, error) {
	if verr := ValidateUploadSubmission(sub); verr != nil {
		return nil, verr
	}
	return o.run(sub, false)
}

func (o *Orchestrator) run(sub Submission, enhance bool) (*Result, error) {
	runID := uuid.NewString()
	submittedAt := time.Now()
	logger := log.With().
		Str("run_id", runID).
		Str("name", sub.DisplayName).
		Logger()

	logger.Info().
		Str("mime_type", sub.Audio.MimeType).
		Int("audio_size_bytes", len(sub.Audio.Data)).
		Float64("duration_seconds", sub.ClientDuration).
		Bool("enhance", enhance).
		Msg("Processing submission")

	// Cleanup is a finalizer, not a stage: once a voice is cloned it
	// must be deleted no matter how the rest of the run ends,
	// including a panic in a later stage.
	var voiceID string
	defer func() {
		if voiceID == "" {
			return
		}
		if err := o.voice.DeleteVoice(voiceID); err != nil {
			logger.Warn().Err(err).Str("voice_id", voiceID).Msg("Failed to delete cloned voice")
		}
	}()

	// The raw recording is stored before any AI call so the visitor's
	// audio survives every downstream failure.
	raw, err := o.storeArtifact(rawKeyPrefix, sub.Audio.Data, sub.Audio.MimeType, sub.DisplayName, sub.Audio.FileName, sub.ClientDuration)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to store raw recording")
		o.notify(NotificationRecord{
			RunID:       runID,
			Name:        sub.DisplayName,
			Email:       sub.ContactEmail,
			SubmittedAt: submittedAt,
			FatalError:  fmt.Sprintf("failed to store raw recording: %v", err),
		}, logger)
		return nil, &StorageError{Op: "raw recording upload", Err: err}
	}

	result := &Result{RunID: runID, Raw: *raw}

	if enhance {
		o.runEnhancement(sub, result, &voiceID, logger)
	}

	record := NotificationRecord{
		RunID:            runID,
		Name:             sub.DisplayName,
		Email:            sub.ContactEmail,
		SubmittedAt:      submittedAt,
		Raw:              summarize(result.Raw),
		EnhancementError: result.EnhancementError,
	}
	if result.Enhanced != nil {
		record.Enhanced = summarize(*result.Enhanced)
	}
	o.notify(record, logger)

	logger.Info().
		Bool("enhanced", result.Enhanced != nil).
		Str("enhancement_error", result.EnhancementError).
		Msg("Submission processed")

	return result, nil
}

// runEnhancement attempts clone, remix, and enhanced-artifact storage.
// Every failure is absorbed into result.EnhancementError; the cloned
// voice ID is reported through voiceID so the caller's finalizer can
// reclaim it.
func (o *Orchestrator) runEnhancement(sub Submission, result *Result, voiceID *string, logger zerolog.Logger) {
	if o.voice == nil {
		logger.Info().Msg("Voice enhancement skipped, no provider configured")
		result.EnhancementError = notConfiguredMessage
		return
	}

	label := fmt.Sprintf("booth-%s-%d", SanitizeName(sub.DisplayName), time.Now().Unix())

	id, err := o.voice.CloneVoice(sub.Audio.Data, sub.Audio.FileName, label)
	if err != nil {
		logger.Warn().Err(err).Msg("Voice cloning failed")
		result.EnhancementError = fmt.Sprintf("voice cloning failed: %v", err)
		return
	}
	*voiceID = id
	result.VoiceID = id

	remix, err := o.voice.RemixVoice(id, EnhancementDirective, ReferenceTranscript)
	if err != nil {
		logger.Warn().Err(err).Str("voice_id", id).Msg("Voice remix failed")
		result.EnhancementError = fmt.Sprintf("voice remix failed: %v", err)
		return
	}

	duration := remix.DurationSeconds
	if duration <= 0 {
		duration = sub.ClientDuration
	}

	fileName := fmt.Sprintf("enhanced-%s.mp3", SanitizeName(sub.DisplayName))
	enhanced, err := o.storeArtifact(enhancedKeyPrefix, remix.Audio, "audio/mpeg", sub.DisplayName, fileName, duration)
	if err != nil {
		logger.Warn().Err(err).Str("voice_id", id).Msg("Failed to store enhanced audio")
		result.EnhancementError = fmt.Sprintf("failed to store enhanced audio: %v", err)
		return
	}

	result.Enhanced = enhanced
}

func (o *Orchestrator) storeArtifact(prefix string, data []byte, contentType, displayName, fileName string, duration float64) (*Artifact, error) {
	key := storageKey(prefix, displayName, fileName)

	if err := o.store.Upload(data, key, contentType, fileName); err != nil {
		return nil, err
	}

	url, err := o.store.Presign(key, fileName, o.presignExpiry)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Key:             key,
		DownloadURL:     url,
		FileName:        fileName,
		SizeBytes:       len(data),
		DurationSeconds: duration,
	}, nil
}

// notify sends the run's single notification. Delivery failure is
// logged and never changes the outcome already determined by the
// earlier stages.
func (o *Orchestrator) notify(record NotificationRecord, logger zerolog.Logger) {
	if err := o.notifier.SendSubmissionNotification(record); err != nil {
		logger.Error().Err(err).Msg("Failed to send submission notification")
	}
}
