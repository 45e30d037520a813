package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// AssetService hands out presigned URLs so the admin UI can upload course
// cover images straight to storage.
type AssetService interface {
	CoverUploadURL(ctx context.Context, courseID, filename string) (uploadURL, storagePath string, err error)
}

type assetService struct {
	presignClient *s3.PresignClient
	bucket        string
	ttl           time.Duration
	logger        zerolog.Logger
}

// NewAssetService creates a new AssetService
func NewAssetService(s3Client *s3.Client, bucket string, ttl time.Duration, logger zerolog.Logger) AssetService {
	return &assetService{
		presignClient: s3.NewPresignClient(s3Client),
		bucket:        bucket,
		ttl:           ttl,
		logger:        logger.With().Str("service", "AssetService").Logger(),
	}
}

// CoverUploadURL returns a presigned PUT URL for a course cover image.
func (s *assetService) CoverUploadURL(ctx context.Context, courseID, filename string) (string, string, error) {
	// path.Base strips any directory components a client might sneak in.
	storagePath := fmt.Sprintf("covers/%s/%s", courseID, path.Base(filename))

	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		s.logger.Error().Err(err).Str("storage_path", storagePath).Msg("failed to presign cover upload")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return req.URL, storagePath, nil
}
