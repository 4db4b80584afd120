package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService hands out presigned S3 URLs for profile photos. The core never
// proxies bytes; clients upload and read directly against the bucket.
type MediaService struct {
	Presigner *s3.PresignClient
	Bucket    string
}

// NewMediaService initializes the S3 presigner from the ambient AWS config.
func NewMediaService() *MediaService {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config for S3: %v", err)
	}
	return &MediaService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    os.Getenv("S3_BUCKET_NAME"),
	}
}

// GenerateUploadURL generates a presigned URL for uploading a profile photo
func (ms *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}

	presignedURL, err := ms.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a stored photo
func (ms *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}

	presignedURL, err := ms.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presignedURL.URL, nil
}
