package slack

import (
	"net/http"
)

// Client posts messages to a Slack incoming-webhook URL.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string, httpClient http.Client) Client {
	return Client{
		webhookURL: webhookURL,
		httpClient: &httpClient,
	}
}
