package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var likesTable = OwnedTable{
	Resource: "like",
	Name:     "likes",
	Columns:  `uuid, owner_uuid, target_type, target_uuid, created_at`,
}

// likeTargets : проверка существования цели с учетом видимости видео для requester.
// Имя таблицы берется только отсюда, не из запроса. Комментарий виден, если видно его видео.
var likeTargets = map[model.LikeTargetType]string{
	model.LikeTargetVideo: `SELECT EXISTS (SELECT 1 FROM videos v WHERE v.uuid = $1 AND ` +
		visibleVideoCond("v", 2) + `)`,
	model.LikeTargetComment: `SELECT EXISTS (SELECT 1 FROM comments c JOIN videos v ON v.uuid = c.video_uuid
		WHERE c.uuid = $1 AND ` + visibleVideoCond("v", 2) + `)`,
	model.LikeTargetTweet: `SELECT EXISTS (SELECT 1 FROM tweets WHERE uuid = $1)`,
}

type LikeRepository struct {
	*config.Database
}

func NewLikeRepository(database *config.Database) *LikeRepository {
	return &LikeRepository{database}
}

// TargetExists : false и для несуществующей цели, и для чужого неопубликованного видео
func (r *LikeRepository) TargetExists(ctx context.Context, requesterUUID string, targetType model.LikeTargetType, targetUUID string) (bool, error) {
	query, ok := likeTargets[targetType]
	if !ok {
		return false, util.Validation("invalid like target")
	}

	args := []interface{}{targetUUID}
	if targetType != model.LikeTargetTweet {
		args = append(args, requesterUUID)
	}

	var exists bool
	if err := r.DB.GetContext(ctx, &exists, query, args...); err != nil {
		return false, dbError("[LikeRepo] не удалось проверить цель лайка", err)
	}
	return exists, nil
}

// Find : nil, nil если лайка нет
func (r *LikeRepository) Find(ctx context.Context, ownerUUID string, targetType model.LikeTargetType, targetUUID string) (*model.Like, error) {
	query := `SELECT ` + likesTable.Columns + ` FROM likes WHERE owner_uuid = $1 AND target_type = $2 AND target_uuid = $3`

	var like model.Like
	if err := sqlx.GetContext(ctx, r.DB, &like, query, ownerUUID, targetType, targetUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("[LikeRepo] не удалось получить лайк", err)
	}
	return &like, nil
}

// InsertIfAbsent : false, если такой лайк уже вставил параллельный запрос
func (r *LikeRepository) InsertIfAbsent(ctx context.Context, like *model.Like) (bool, error) {
	query := `
	INSERT INTO likes (uuid, owner_uuid, target_type, target_uuid)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT ON CONSTRAINT likes_owner_target_key DO NOTHING`

	result, err := r.DB.ExecContext(ctx, query, like.UUID, like.OwnerUUID, like.TargetType, like.TargetUUID)
	if err != nil {
		return false, dbError("[LikeRepo] ошибка вставки лайка", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, dbError("[LikeRepo] не удалось проверить вставку лайка", err)
	}
	return rows == 1, nil
}

// Delete : false, если лайк уже удален
func (r *LikeRepository) Delete(ctx context.Context, uuid, ownerUUID string) (bool, error) {
	_, err := DeleteOwned[model.Like](ctx, r.DB, likesTable, uuid, ownerUUID)
	if errors.Is(err, util.ErrNotFoundOrForbidden) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) ListLikedVideos(ctx context.Context, ownerUUID string) ([]model.Video, error) {
	query := `
		SELECT v.uuid, v.owner_uuid, v.title, v.description, v.video_url, v.thumbnail_url,
			v.duration, v.is_published, v.created_at, v.updated_at
		FROM likes l
		JOIN videos v ON v.uuid = l.target_uuid
		WHERE l.owner_uuid = $1 AND l.target_type = 'video' AND v.is_published = TRUE
		ORDER BY l.created_at DESC`

	videos := []model.Video{}
	if err := sqlx.SelectContext(ctx, r.DB, &videos, query, ownerUUID); err != nil {
		return nil, dbError("[LikeRepo] не удалось получить понравившиеся видео", err)
	}
	return videos, nil
}
