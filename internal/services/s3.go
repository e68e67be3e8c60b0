package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"roam/internal/utils/logger"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error)
	UploadStream(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// S3Service uploads objects to an S3-compatible bucket.
type S3Service struct {
	client   *s3.Client
	bucket   string
	endpoint string
	region   string
	log      *logger.Logger
}

func NewS3Service(bucket, endpoint, region, accessKey, secretKey string) (*S3Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Service{
		client:   client,
		bucket:   bucket,
		endpoint: endpoint,
		region:   region,
		log:      logger.New("s3"),
	}, nil
}

// UploadFile stores a parsed multipart file under a generated tour/ key
// with public-read ACL.
func (s *S3Service) UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.UploadStream(ctx, file.Filename, file.Header.Get("Content-Type"), src)
}

// UploadStream stores body under a generated tour/ key with public-read
// ACL and returns the public URL.
func (s *S3Service) UploadStream(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := objectKey(filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	url := s.publicURL(key)
	s.log.Success("Uploaded %s", url)
	return url, nil
}

// objectKey builds "tour/<unix-millis>-<random>-<original-name>".
func objectKey(filename string) string {
	random := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("tour/%d-%s-%s", time.Now().UnixMilli(), random, filename)
}

func (s *S3Service) publicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
