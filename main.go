package main

import (
	"net/http"
	"time"

	"github.com/VoiceBooth-AI/voicebooth-go/aws"
	"github.com/VoiceBooth-AI/voicebooth-go/booth"
	"github.com/VoiceBooth-AI/voicebooth-go/config"
	"github.com/VoiceBooth-AI/voicebooth-go/elevenlabs"
	"github.com/VoiceBooth-AI/voicebooth-go/server"
	"github.com/VoiceBooth-AI/voicebooth-go/slack"
)

func main() {
	cfg := config.Load()

	httpClient := http.Client{}

	awsClient := aws.NewClient(cfg.AWSRegion, cfg.S3Bucket)

	slackClient := slack.NewClient(cfg.SlackWebhookURL, httpClient)

	var voiceAI booth.VoiceAI
	if cfg.ElevenLabsAPIKey != "" {
		elevenLabsClient := elevenlabs.NewClient(cfg.ElevenLabsAPIKey, httpClient)
		voiceAI = &elevenLabsClient
	}

	orchestrator := booth.NewOrchestrator(
		awsClient,
		voiceAI,
		&slackClient,
		time.Duration(cfg.PresignExpirySeconds)*time.Second,
	)

	srv := server.New(orchestrator)
	srv.Start(cfg.Port)
}
