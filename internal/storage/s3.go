package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fadeandco/barbershop-api/internal/config"
)

// Uploader stores media (barber photos, GCash QR codes) in an
// S3-compatible bucket and returns public URLs.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Non-empty endpoint means a compatible store (MinIO in dev).
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
	}
}

// UploadImage re-encodes the image as webp and stores it under the
// given prefix with a random key. Returns the public URL.
func (u *Uploader) UploadImage(ctx context.Context, prefix string, r io.Reader) (string, error) {
	data, err := EncodeWebP(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", strings.Trim(prefix, "/"), uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	log.Debug().Str("key", key).Int("bytes", len(data)).Msg("image uploaded")

	return u.baseURL + "/" + key, nil
}
