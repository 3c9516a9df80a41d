package ports

import (
	"content-hub-api/internal/model"
	"context"
)

// VideoCache : Redis слой
type VideoCache interface {
	VideoVersion(ctx context.Context, uuid string) (int64, error)
	SetVideo(ctx context.Context, video *model.Video, version int64) error
	GetVideo(ctx context.Context, uuid string) (*model.Video, error)
	DeleteVideo(ctx context.Context, uuid string) error
}
