package storage

import (
	"context"
	"io"
	"strings"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore keeps uploaded post images and avatars and hands back their public URL.
type ImageStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type s3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3(cfg config.StorageConfig) ImageStore {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	opts := s3.Options{
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region:       region,
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &s3Store{
		client:    s3.New(opts),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}
}

func (s *s3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}
