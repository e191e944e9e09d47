package blob

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
	useSSL  bool
}

func NewMinioStore(endpoint, accessKey, secretKey, bucket, baseURL string, useSSL bool) (*MinioStore, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{client: cli, bucket: bucket, baseURL: baseURL, useSSL: useSSL}, nil
}

func (m *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (m *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return "", err
	}
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return m.publicURL(key), nil
}

func (m *MinioStore) publicURL(key string) string {
	if m.baseURL != "" {
		return strings.TrimRight(m.baseURL, "/") + "/" + key
	}
	scheme := "http://"
	if m.useSSL {
		scheme = "https://"
	}
	return scheme + m.client.EndpointURL().Host + "/" + m.bucket + "/" + key
}
