package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"context"
)

type DashboardService struct {
	dashboardRepository ports.DashboardRepository
	videoRepository     ports.VideoRepository
}

func NewDashboardService(dashboardRepository ports.DashboardRepository, videoRepository ports.VideoRepository) *DashboardService {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		videoRepository:     videoRepository,
	}
}

func (s *DashboardService) ChannelStats(ctx context.Context) (*model.ChannelStats, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.dashboardRepository.ChannelStats(ctx, owner.UUID)
}

// ChannelVideos : все видео канала, включая неопубликованные
func (s *DashboardService) ChannelVideos(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.videoRepository.ListByOwner(ctx, owner.UUID, cursor, limit)
}
