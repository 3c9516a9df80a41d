package ports

import (
	"content-hub-api/internal/model"
	"context"
)

type DashboardRepository interface {
	ChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error)
}

type DashboardService interface {
	ChannelStats(ctx context.Context) (*model.ChannelStats, error)
	ChannelVideos(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error)
}

// Pinger : зависимость, проверяемая в healthcheck
type Pinger interface {
	PingContext(ctx context.Context) error
}
