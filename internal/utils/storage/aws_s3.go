package storage

import (
	"WasteLess-API/internal/utils"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey := utils.GetConfig("AWS_ACCESS_KEY"); accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Printf("failed to load AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, filepath.Ext(file.Filename))
	return a.putObject(objectKey, file, allowedTypes...)
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return a.putObject(objectKey, file, allowedTypes...)
}

func (a *awsS3) putObject(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 && !typeAllowed(contentType, allowedTypes) {
		return "", fmt.Errorf("content type %s not allowed", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/%s", a.baseURL(), objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := a.baseURL() + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func (a *awsS3) baseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", a.bucket, a.region)
}

func typeAllowed(contentType string, allowedTypes []string) bool {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
