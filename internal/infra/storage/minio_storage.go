// Package storage implements prescription image storage on a MinIO bucket.
package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"pharmadrop/config"
	"pharmadrop/internal/domain/lifecycle"
	"pharmadrop/internal/domain/service"
	"pharmadrop/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// minioStorage implements service.PrescriptionStorage on a MinIO bucket.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// New creates the prescription image store and ensures the bucket exists
// on startup.
func New(params Params) (service.PrescriptionStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration missing")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	store := &minioStorage{
		client: client,
		bucket: cfg.Bucket,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			exists, err := client.BucketExists(ctx, cfg.Bucket)
			if err != nil {
				return errors.Wrap(err, "failed to check bucket")
			}
			if !exists {
				if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
					return errors.Wrap(err, "failed to create bucket")
				}
				params.Logger.Info("created prescription bucket", slog.String("bucket", cfg.Bucket))
			}

			return nil
		},
	})

	return store, nil
}

// Upload stores the image bytes and returns the bucket-relative path.
func (s *minioStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload prescription image")
	}

	return s.bucket + "/" + objectName, nil
}

// Fetch reads a stored object back and returns its bytes and content type.
func (s *minioStorage) Fetch(ctx context.Context, objectPath string) ([]byte, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(objectPath), minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open prescription image")
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to stat prescription image")
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read prescription image")
	}

	return data, info.ContentType, nil
}

// Delete removes a stored object given the path returned by Upload.
func (s *minioStorage) Delete(ctx context.Context, objectPath string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, s.objectName(objectPath), minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "failed to delete prescription image")
	}

	return nil
}

// objectName strips the bucket prefix Upload bakes into stored paths.
func (s *minioStorage) objectName(objectPath string) string {
	if prefix := s.bucket + "/"; len(objectPath) > len(prefix) && objectPath[:len(prefix)] == prefix {
		return objectPath[len(prefix):]
	}

	return objectPath
}
