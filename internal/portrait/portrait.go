// Package portrait turns stored portrait references into URLs a client can load.
package portrait

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// Passthrough returns references unchanged.
type Passthrough struct{}

func (Passthrough) Resolve(_ context.Context, ref string) (string, error) {
	return ref, nil
}

// S3 presigns object keys; absolute URLs are returned as they are.
type S3 struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

func NewS3(cfg config.StorageConfig) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("portrait: bucket is required")
	}

	awsCfg := aws.Config{Region: cfg.Region}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &S3{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     ttl,
	}, nil
}

func (r *S3) Resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" || isAbsolute(ref) {
		return ref, nil
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", ref, err)
	}
	return req.URL, nil
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Doctor resolves d's portrait, keeping the stored reference when that fails.
func Doctor(ctx context.Context, r Resolver, d models.Doctor) models.Doctor {
	if url, err := r.Resolve(ctx, d.ProfileImage); err == nil {
		d.ProfileImage = url
	}
	return d
}

// Appointment resolves the inlined doctor's portrait on a copy of ap.
func Appointment(ctx context.Context, r Resolver, ap models.Appointment) models.Appointment {
	if ap.Doctor != nil {
		d := Doctor(ctx, r, *ap.Doctor)
		ap.Doctor = &d
	}
	return ap
}

// New picks S3 when a bucket is configured.
func New(cfg config.StorageConfig) (Resolver, error) {
	if cfg.Bucket == "" {
		return Passthrough{}, nil
	}
	return NewS3(cfg)
}
