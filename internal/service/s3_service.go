package service

import (
	"content-hub-api/config"
	"content-hub-api/internal/util"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Service struct {
	client        *s3.Client
	bucket        string
	psClient      *s3.PresignClient
	publicBaseURL string
}

func NewS3Service(ctx context.Context, cfg *config.S3Config) (*S3Service, error) {
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Local {
		if err := ensureBucket(ctx, client, cfg.Bucket); err != nil {
			return nil, err
		}
	}

	return &S3Service{
		client:        client,
		psClient:      s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg),
	}, nil
}

// newS3Client : локально (MinIO) статические ключи и path-style, иначе стандартная цепочка AWS
func newS3Client(ctx context.Context, cfg *config.S3Config) (*s3.Client, error) {
	if !cfg.Local {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Service] ошибка загрузки AWS config", err)
		}
		return s3.NewFromConfig(awsCfg), nil
	}

	accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
	if accessKey == "" {
		accessKey, secretKey = "minioadmin", "minioadmin"
	}
	return s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
	}), nil
}

// publicBaseURL : если адрес CDN не задан, ссылки строятся на сам бакет
func publicBaseURL(cfg *config.S3Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// ensureBucket : медиа-бакет для локального окружения
func ensureBucket(ctx context.Context, client *s3.Client, bucket string) error {
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &bucket}); err == nil {
		return nil
	}

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: &bucket}); err != nil {
		return util.LogError(fmt.Sprintf("[S3Service] не удалось создать бакет %s", bucket), err)
	}

	log.Printf("[S3Service] создан бакет для медиа: %s", bucket)
	return nil
}

// Upload : загрузка файла с сервера, возвращает публичный URL
func (s *S3Service) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", util.LogError("[S3Service] не удалось загрузить объект", err)
	}

	return s.PublicURL(key), nil
}

// GeneratePresignedPutURL : клиент загружает видео или превью напрямую в бакет
func (s *S3Service) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key}
	presigned, err := s.psClient.PresignPutObject(ctx, input, s3.WithPresignExpires(expire))
	if err != nil {
		return "", util.LogError(fmt.Sprintf("[S3Service] presign PUT для %s", key), err)
	}
	return presigned.URL, nil
}

func (s *S3Service) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// DeleteObject : используется для уборки загруженного файла, если запись в БД не удалась
func (s *S3Service) DeleteObject(ctx context.Context, key string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key}); err != nil {
		return util.LogError(fmt.Sprintf("[S3Service] не удалось удалить объект %s", key), err)
	}
	return nil
}
