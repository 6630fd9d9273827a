package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                 string
	AWSRegion            string
	S3Bucket             string
	PresignExpirySeconds int
	ElevenLabsAPIKey     string
	SlackWebhookURL      string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		AWSRegion:            getEnv("AWS_REGION", ""),
		S3Bucket:             getEnv("S3_BUCKET", ""),
		PresignExpirySeconds: getEnvInt("PRESIGN_EXPIRY_SECONDS", 604800),
		ElevenLabsAPIKey:     getEnv("ELEVENLABS_API_KEY", ""),
		SlackWebhookURL:      getEnv("SLACK_WEBHOOK_URL", ""),
	}

	if cfg.AWSRegion == "" {
		log.Fatal().Msg("AWS_REGION environment variable is required")
	}

	if cfg.S3Bucket == "" {
		log.Fatal().Msg("S3_BUCKET environment variable is required")
	}

	// Every submission must reach the team channel, so a missing
	// webhook is a startup error. A missing ElevenLabs key only
	// disables the enhancement stage.
	if cfg.SlackWebhookURL == "" {
		log.Fatal().Msg("SLACK_WEBHOOK_URL environment variable is required")
	}

	if cfg.ElevenLabsAPIKey == "" {
		log.Warn().Msg("ELEVENLABS_API_KEY not set, voice enhancement is disabled")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
