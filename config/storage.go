package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
	publicURL  string
}

// NewS3Config initializes the S3 client and verifies that the bucket exists
func NewS3Config(ctx context.Context, m MediaConfig) (*S3Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(m.Region),
	}
	if m.AccessKeyID != "" && m.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(m.AccessKeyID, m.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if m.Endpoint != "" {
			o.BaseEndpoint = aws.String(m.Endpoint)
		}
		o.UsePathStyle = m.ForcePathStyle
	})

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(m.Bucket)})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return nil, fmt.Errorf("bucket '%s' does not exist", m.Bucket)
		}
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	return &S3Config{
		Client:     client,
		BucketName: m.Bucket,
		publicURL:  publicBaseURL(m),
	}, nil
}

// ObjectURL returns the public URL of an object key
func (s *S3Config) ObjectURL(key string) string {
	return s.publicURL + "/" + key
}

// ObjectKey extracts the object key from a URL produced by ObjectURL.
// URLs that do not belong to the bucket return false.
func (s *S3Config) ObjectKey(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func publicBaseURL(m MediaConfig) string {
	switch {
	case m.PublicURL != "":
		return strings.TrimRight(m.PublicURL, "/")
	case m.Endpoint != "":
		return strings.TrimRight(m.Endpoint, "/") + "/" + m.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.amazonaws.com", m.Bucket)
	}
}
