package blobfx

import (
	"go.uber.org/fx"

	"github.com/Yadavallitejas/tourist-guard/pkg/blob"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
)

var Module = fx.Provide(
	provideBlobStore)

func provideBlobStore(cfg *config.Config) (blob.Store, error) {
	return blob.NewMinioStore(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.BaseURL,
		cfg.Minio.UseSSL,
	)
}
