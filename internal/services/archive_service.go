package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"favorites-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ArchiveService stores generated list exports in a MinIO/S3 bucket.
type ArchiveService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewArchiveService(cfg *config.MinIOConfig, logger *logrus.Logger) (*ArchiveService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &ArchiveService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *ArchiveService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/exports/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read for exports")
	return nil
}

// Archive uploads an export workbook and returns its public URL.
func (s *ArchiveService) Archive(ctx context.Context, listID uint, filename string, data []byte) (string, error) {
	objectPath := ExportObjectPath(listID, filename, uuid.New().String()[:8])

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		objectPath,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType:        ExportContentType,
			ContentDisposition: "attachment; filename=" + filename,
		},
	)
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to upload export")
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	publicURL := PublicObjectURL(s.publicURL, s.bucket, objectPath)

	s.logger.WithFields(logrus.Fields{
		"list_id":    listID,
		"objectPath": objectPath,
		"size":       len(data),
	}).Info("Export archived")

	return publicURL, nil
}

// ExportObjectPath is the bucket key of an archived export.
func ExportObjectPath(listID uint, filename, suffix string) string {
	return fmt.Sprintf("exports/%d/%s_%s", listID, suffix, filename)
}

// PublicObjectURL joins the scheme and host of publicURL with bucket and
// objectPath. Any path already on publicURL is dropped.
func PublicObjectURL(publicURL, bucket, objectPath string) string {
	publicBase := strings.TrimPrefix(publicURL, "https://")
	publicBase = strings.TrimPrefix(publicBase, "http://")

	if idx := strings.Index(publicBase, "/"); idx != -1 {
		publicBase = publicBase[:idx]
	}

	protocol := "http://"
	if strings.HasPrefix(publicURL, "https://") {
		protocol = "https://"
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, publicBase, bucket, objectPath)
}
