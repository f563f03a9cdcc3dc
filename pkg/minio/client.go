package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/linskybing/staffing-go/internal/config"
	"github.com/linskybing/staffing-go/internal/config/logger"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Archive stores JSON snapshots of deleted documents in a bucket.
type Archive struct {
	client *minioSDK.Client
	bucket string
}

// NewArchive connects to MinIO and makes sure the bucket exists.
func NewArchive(ctx context.Context) (*Archive, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", config.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.MinioBucket, err)
		}
		logger.Log.Info("Bucket created", zap.String("bucket", config.MinioBucket))
	}

	return &Archive{client: client, bucket: config.MinioBucket}, nil
}

// Put writes data under key, replacing any previous snapshot.
func (a *Archive) Put(ctx context.Context, key string, data []byte) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minioSDK.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}
