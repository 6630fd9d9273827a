package aws

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/rs/zerolog/log"
)

type Client struct {
	session  *session.Session
	bucket   string
	region   string
	uploader *s3manager.Uploader
	s3Client *s3.S3
}

func NewClient(region, bucket string) *Client {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AWS session")
	}

	log.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("AWS session created successfully")

	return &Client{
		session:  sess,
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
		s3Client: s3.New(sess),
	}
}

// Upload stores one audio object under the given key. The bucket stays
// private; downloads go through presigned URLs only.
func (c *Client) Upload(data []byte, key, contentType, downloadFilename string) error {
	log.Info().
		Str("bucket", c.bucket).
		Str("key", key).
		Str("content_type", contentType).
		Int("content_size", len(data)).
		Msg("Starting S3 upload")

	uploadInput := &s3manager.UploadInput{
		Bucket:             aws.String(c.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(data),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(attachmentDisposition(downloadFilename)),
	}

	result, err := c.uploader.Upload(uploadInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", c.bucket).
			Str("region", c.region).
			Str("key", key).
			Msg("S3 upload failed")
		return fmt.Errorf("failed to upload audio to S3: %w", err)
	}

	log.Info().
		Str("s3_location", result.Location).
		Str("bucket", c.bucket).
		Str("key", key).
		Msg("Audio uploaded to S3 successfully")

	return nil
}

// Presign returns a time-limited GET URL that forces the browser to
// save the object under downloadFilename instead of playing it inline.
func (c *Client) Presign(key, downloadFilename string, expiry time.Duration) (string, error) {
	req, _ := c.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket:                     aws.String(c.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(attachmentDisposition(downloadFilename)),
	})

	url, err := req.Presign(expiry)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", c.bucket).
			Str("key", key).
			Msg("Failed to presign S3 object")
		return "", fmt.Errorf("failed to presign S3 object: %w", err)
	}

	log.Info().
		Str("key", key).
		Dur("expiry", expiry).
		Msg("Presigned download URL generated")

	return url, nil
}

func attachmentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
