package elevenlabs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"
)

const VoicesPath = "/voices"

// CloneVoice creates an instant voice clone from a single audio sample
// and returns the provider-assigned voice ID. The label names the clone
// in the provider's voice library; callers should make it unique.
func (c *Client) CloneVoice(audio []byte, fileName, label string) (string, error) {
	log.Info().
		Str("label", label).
		Str("file_name", fileName).
		Int("audio_size_bytes", len(audio)).
		Msg("Cloning voice from audio sample")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("name", label); err != nil {
		return "", fmt.Errorf("failed to write name field: %w", err)
	}

	part, err := writer.CreateFormFile("files", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	apiURL := fmt.Sprintf("%s%s/add", BaseURL, VoicesPath)

	req, err := http.NewRequest("POST", apiURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	respBody, err := c.sendRequest(req)
	if err != nil {
		return "", err
	}

	var response addVoiceResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal clone response: %w", err)
	}

	if response.VoiceID == "" {
		return "", fmt.Errorf("clone response contained no voice ID")
	}

	log.Info().
		Str("voice_id", response.VoiceID).
		Str("label", label).
		Msg("Voice cloned successfully")

	return response.VoiceID, nil
}

// DeleteVoice removes a cloned voice from the provider's voice library.
func (c *Client) DeleteVoice(voiceID string) error {
	apiURL := fmt.Sprintf("%s%s/%s", BaseURL, VoicesPath, voiceID)

	req, err := http.NewRequest("DELETE", apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if _, err := c.sendRequest(req); err != nil {
		return err
	}

	log.Info().Str("voice_id", voiceID).Msg("Cloned voice deleted")

	return nil
}
