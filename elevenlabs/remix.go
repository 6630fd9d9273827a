package elevenlabs

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// DefaultRemixSettings are the fixed tuning parameters used for booth
// enhancement runs.
var DefaultRemixSettings = RemixSettings{
	Quality:          0.9,
	Similarity:       0.85,
	GuidanceScale:    5,
	RemixingStrength: 0.4,
}

// RemixVoice generates new audio in the cloned voice, speaking the
// reference text, steered by the natural-language directive. The API
// may return several candidate previews; the first one is always
// selected. The returned audio is already base64-decoded.
func (c *Client) RemixVoice(voiceID, directive, referenceText string) (RemixResult, error) {
	log.Info().
		Str("voice_id", voiceID).
		Int("text_length", len(referenceText)).
		Msg("Remixing cloned voice")

	requestBody := remixRequest{
		VoiceDescription: directive,
		Text:             referenceText,
		Settings:         &DefaultRemixSettings,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return RemixResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiURL := fmt.Sprintf("%s/text-to-voice/remix/%s", BaseURL, voiceID)

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return RemixResult{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.sendRequest(req)
	if err != nil {
		return RemixResult{}, err
	}

	var response remixResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return RemixResult{}, fmt.Errorf("failed to unmarshal remix response: %w", err)
	}

	if len(response.Previews) == 0 {
		return RemixResult{}, fmt.Errorf("remix response contained no previews")
	}

	preview := response.Previews[0]

	audio, err := base64.StdEncoding.DecodeString(preview.audioBase64())
	if err != nil {
		return RemixResult{}, fmt.Errorf("failed to decode preview audio: %w", err)
	}
	if len(audio) == 0 {
		return RemixResult{}, fmt.Errorf("remix preview contained no audio")
	}

	log.Info().
		Str("voice_id", voiceID).
		Int("preview_count", len(response.Previews)).
		Int("audio_size_bytes", len(audio)).
		Float64("duration_seconds", preview.duration()).
		Msg("Voice remix completed")

	return RemixResult{
		Audio:           audio,
		DurationSeconds: preview.duration(),
	}, nil
}
