package minio

import (
	"context"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/heliomart/solarstore-go/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

// PresignedImageURL returns a short-lived GET URL for a product image key.
// Returns empty when the object store is not configured (unit tests).
func PresignedImageURL(ctx context.Context, key string) string {
	if Client == nil || key == "" {
		return ""
	}
	u, err := Client.PresignedGetObject(ctx, BucketName, key, 15*time.Minute, url.Values{})
	if err != nil {
		log.Printf("presign %s: %v", key, err)
		return ""
	}
	return u.String()
}

// UploadProductImage stores an image under the given key.
func UploadProductImage(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := Client.PutObject(ctx, BucketName, key, reader, size, minioSDK.PutObjectOptions{ContentType: contentType})
	return err
}
