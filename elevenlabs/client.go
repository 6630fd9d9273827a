// Package elevenlabs provides a client for the ElevenLabs voice
// cloning and remixing APIs.
//
// This package offers the three operations the voice booth needs:
//   - Cloning a voice model from a short audio sample
//   - Remixing a cloned voice against a reference transcript, guided
//     by a natural-language directive
//   - Deleting a cloned voice model once the booth is done with it
//
// Basic usage:
//
//	client := elevenlabs.NewClient(apiKey, http.Client{})
//
//	voiceID, err := client.CloneVoice(audio, "sample.wav", "booth-ada-1756600000")
//	remix, err := client.RemixVoice(voiceID, directive, transcript)
//	err = client.DeleteVoice(voiceID)
package elevenlabs

import (
	"io"
	"net/http"
)

const BaseURL = "https://api.elevenlabs.io/v1"

type Client struct {
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new ElevenLabs client.
//
// Parameters:
//   - apiKey: Your ElevenLabs API key for authentication
//   - httpClient: HTTP client for making requests to ElevenLabs API
func NewClient(apiKey string, httpClient http.Client) Client {
	return Client{
		APIKey:     apiKey,
		HTTPClient: &httpClient,
	}
}

func (c *Client) sendRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}
