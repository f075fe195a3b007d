package storage

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3ObjectStore struct { // implements ObjectStore
	client *s3.Client

	bucket        string
	publicBaseURL string
}

func NewS3ObjectStore(accessKeyID, accessKeySecret, endpoint, region, bucket, publicBaseURL string) (*S3ObjectStore, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, &UploadError{Message: "error initializing object storage client", Err: err}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3ObjectStore{
		client: client,

		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (s *S3ObjectStore) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		storageLogger.Error().Err(err).Str("object", name).Msg("Upload failed")
		return &UploadError{Message: "Lỗi upload ảnh", Err: err}
	}

	storageLogger.Info().Str("object", name).Int("size", len(data)).Msg("Image uploaded")

	return nil
}

func (s *S3ObjectStore) PublicURL(name string) string {
	return s.publicBaseURL + "/" + name
}
