package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/config"
)

// Media folders
const (
	FolderRecipes    = "recipes"
	FolderAvatars    = "avatars"
	FolderCategories = "categories"
)

// ErrMediaDisabled is returned by uploads when no bucket is configured
var ErrMediaDisabled = errors.New("media storage is not configured")

// Upload is a validated image received from a client
type Upload struct {
	Data        []byte
	ContentType string
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type objectLocator interface {
	ObjectURL(key string) string
	ObjectKey(url string) (string, bool)
}

// S3MediaStorage keeps images in an S3 compatible bucket
type S3MediaStorage struct {
	client  objectAPI
	bucket  string
	locator objectLocator
	log     *zap.Logger
}

func NewS3MediaStorage(cfg *config.S3Config, log *zap.Logger) *S3MediaStorage {
	return &S3MediaStorage{
		client:  cfg.Client,
		bucket:  cfg.BucketName,
		locator: cfg,
		log:     log.Named("media"),
	}
}

// Upload stores data under folder/<uuid><ext> and returns the public URL
func (s *S3MediaStorage) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	key := folder + "/" + uuid.NewString() + extensionFor(contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.locator.ObjectURL(key)
	s.log.Debug("uploaded object", zap.String("key", key), zap.Int("bytes", len(data)))
	return url, nil
}

// Delete removes the object behind url. URLs outside the bucket are ignored.
func (s *S3MediaStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.locator.ObjectKey(url)
	if !ok {
		return nil
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

func extensionFor(contentType string) string {
	if m := mimetype.Lookup(contentType); m != nil {
		return m.Extension()
	}
	return ""
}

type disabledMedia struct{}

// DisabledMediaStorage rejects uploads and treats deletes as no-ops
func DisabledMediaStorage() MediaStorage {
	return disabledMedia{}
}

func (disabledMedia) Upload(context.Context, []byte, string, string) (string, error) {
	return "", ErrMediaDisabled
}

func (disabledMedia) Delete(context.Context, string) error {
	return nil
}
