package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"recruitly/cv-assistant/internal/config"
	"recruitly/cv-assistant/internal/models"
)

// ObjectGetter is the subset of the S3 client used to fetch résumés.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ObjectSource downloads résumés stored in an S3 compatible bucket.
type ObjectSource interface {
	Download(ctx context.Context, keys []string) ([]models.UploadedFile, error)
}

type objectSource struct {
	client ObjectGetter
	bucket string
}

func NewObjectSource(client ObjectGetter, bucket string) ObjectSource {
	return &objectSource{client: client, bucket: bucket}
}

// NewR2ObjectSource builds an ObjectSource against a Cloudflare R2 bucket.
func NewR2ObjectSource(ctx context.Context, cfg config.R2Config) (ObjectSource, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("R2 is not configured (set R2_ACCOUNT_ID, R2_BUCKET, R2_ACCESS_KEY, R2_SECRET_KEY)")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
	})

	return NewObjectSource(client, cfg.Bucket), nil
}

// Download implements ObjectSource. Objects come back in key order, named
// after the last path element of their key.
func (o *objectSource) Download(ctx context.Context, keys []string) ([]models.UploadedFile, error) {
	files := make([]models.UploadedFile, 0, len(keys))

	for _, key := range keys {
		content, err := o.get(ctx, key)
		if err != nil {
			return nil, &ServiceError{Op: fmt.Sprintf("failed to download %s", key), Cause: err}
		}

		files = append(files, models.UploadedFile{
			FileName: path.Base(key),
			Content:  content,
		})
	}

	return files, nil
}

func (o *objectSource) get(ctx context.Context, key string) ([]byte, error) {
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}
