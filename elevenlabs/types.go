package elevenlabs

import (
	"encoding/json"
	"fmt"
)

// RemixResult is the normalized outcome of one remix call: the decoded
// audio of the selected candidate and the duration the provider
// reported for it. DurationSeconds is zero when the provider omitted it.
type RemixResult struct {
	Audio           []byte
	DurationSeconds float64
}

type addVoiceResponse struct {
	VoiceID string `json:"voice_id"`
}

type remixRequest struct {
	VoiceDescription string         `json:"voice_description"`
	Text             string         `json:"text"`
	Settings         *RemixSettings `json:"settings,omitempty"`
}

// RemixSettings are the tuning parameters forwarded with every remix
// request.
type RemixSettings struct {
	Quality          float64 `json:"quality"`
	Similarity       float64 `json:"similarity"`
	GuidanceScale    float64 `json:"guidance_scale"`
	RemixingStrength float64 `json:"remixing_strength"`
}

// remixPreview mirrors one candidate rendering. The API has shipped
// both snake-case spellings of the audio and duration fields over
// time, so both are declared and resolved in audioBase64/duration.
type remixPreview struct {
	AudioBase64Old  string  `json:"audio_base_64"`
	AudioBase64New  string  `json:"audio_base64"`
	DurationSecs    float64 `json:"duration_secs"`
	DurationSeconds float64 `json:"duration_seconds"`
	MediaType       string  `json:"media_type"`
	GeneratedID     string  `json:"generated_voice_id"`
}

func (p remixPreview) audioBase64() string {
	if p.AudioBase64Old != "" {
		return p.AudioBase64Old
	}
	return p.AudioBase64New
}

func (p remixPreview) duration() float64 {
	if p.DurationSecs > 0 {
		return p.DurationSecs
	}
	return p.DurationSeconds
}

type remixResponse struct {
	Previews []remixPreview `json:"previews"`
}

type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
}

func newAPIError(statusCode int, body []byte) APIError {
	apiErr := APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, &apiErr); err != nil || (apiErr.Message == "" && apiErr.Detail == "") {
		apiErr.Message = string(body)
	}
	return apiErr
}

func (e APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ElevenLabs API error (status %d): %s - %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("ElevenLabs API error (status %d): %s", e.StatusCode, e.Message)
}
