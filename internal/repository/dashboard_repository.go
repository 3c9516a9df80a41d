package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

type DashboardRepository struct {
	*config.Database
}

func NewDashboardRepository(database *config.Database) *DashboardRepository {
	return &DashboardRepository{database}
}

// ChannelStats : лайки и комментарии считаются только по видео канала
func (r *DashboardRepository) ChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error) {
	query := `
	SELECT
		(SELECT COUNT(*) FROM videos WHERE owner_uuid = $1) AS total_videos,
		(SELECT COUNT(*) FROM likes l JOIN videos v ON v.uuid = l.target_uuid
			WHERE l.target_type = 'video' AND v.owner_uuid = $1) AS total_likes,
		(SELECT COUNT(*) FROM comments c JOIN videos v ON v.uuid = c.video_uuid
			WHERE v.owner_uuid = $1) AS total_comments,
		(SELECT COUNT(*) FROM tweets WHERE owner_uuid = $1) AS total_tweets,
		(SELECT COUNT(*) FROM playlists WHERE owner_uuid = $1) AS total_playlists`

	var stats model.ChannelStats
	if err := sqlx.GetContext(ctx, r.DB, &stats, query, ownerUUID); err != nil {
		return nil, dbError("[DashboardRepo] не удалось посчитать статистику канала", err)
	}
	return &stats, nil
}
