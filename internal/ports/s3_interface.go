package ports

import (
	"context"
	"io"
	"time"
)

// MediaStorage : S3 совместимое хранилище, ядру нужен только URL
type MediaStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error)
	PublicURL(key string) string
	DeleteObject(ctx context.Context, key string) error
}
