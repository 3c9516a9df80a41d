package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var videosTable = OwnedTable{
	Resource: "video",
	Name:     "videos",
	Columns: `uuid, owner_uuid, title, description, video_url, thumbnail_url,
		duration, is_published, created_at, updated_at`,
}

// visibleVideoCond : видео опубликовано или принадлежит requester.
// Тот же критерий, что и при чтении видео по id.
func visibleVideoCond(alias string, requesterParam int) string {
	return fmt.Sprintf("(%[1]s.is_published OR %[1]s.owner_uuid = $%[2]d)", alias, requesterParam)
}

type VideoRepository struct {
	*config.Database
}

func NewVideoRepository(database *config.Database) *VideoRepository {
	return &VideoRepository{database}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	query := `
	INSERT INTO videos (uuid, owner_uuid, title, description, video_url, thumbnail_url, duration, is_published)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + videosTable.Columns

	var created model.Video
	err := sqlx.GetContext(ctx, r.DB, &created, query,
		video.UUID,
		video.OwnerUUID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.Duration,
		video.IsPublished,
	)
	if err != nil {
		return nil, dbError("[VideoRepo] ошибка вставки видео", err)
	}

	return &created, nil
}

func (r *VideoRepository) GetByUUID(ctx context.Context, uuid string) (*model.Video, error) {
	query := `SELECT ` + videosTable.Columns + ` FROM videos WHERE uuid = $1`

	var video model.Video
	if err := sqlx.GetContext(ctx, r.DB, &video, query, uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFoundOrForbidden("video not found")
		}
		return nil, dbError("[VideoRepo] не удалось получить видео", err)
	}

	return &video, nil
}

// List : только опубликованные видео
func (r *VideoRepository) List(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error) {
	base := `SELECT ` + videosTable.Columns + ` FROM videos WHERE is_published = TRUE`
	return selectPage(ctx, r.DB, base, cursor, limit, videoKey)
}

// ListByOwner : все видео канала, включая неопубликованные
func (r *VideoRepository) ListByOwner(ctx context.Context, ownerUUID, cursor string, limit int) (*model.Page[model.Video], error) {
	base := `SELECT ` + videosTable.Columns + ` FROM videos WHERE owner_uuid = $1`
	return selectPage(ctx, r.DB, base, cursor, limit, videoKey, ownerUUID)
}

func (r *VideoRepository) Update(ctx context.Context, uuid, ownerUUID string, update *model.VideoUpdate) (*model.Video, error) {
	var assignments []Assignment
	if update.Title != nil {
		assignments = append(assignments, Assignment{Column: "title", Value: *update.Title})
	}
	if update.Description != nil {
		assignments = append(assignments, Assignment{Column: "description", Value: *update.Description})
	}
	if update.VideoURL != nil {
		assignments = append(assignments, Assignment{Column: "video_url", Value: *update.VideoURL})
	}
	if update.ThumbnailURL != nil {
		assignments = append(assignments, Assignment{Column: "thumbnail_url", Value: *update.ThumbnailURL})
	}

	return UpdateOwned[model.Video](ctx, r.DB, videosTable, uuid, ownerUUID, assignments)
}

// TogglePublish : переключение флага одним UPDATE, без чтения перед записью
func (r *VideoRepository) TogglePublish(ctx context.Context, uuid, ownerUUID string) (*model.Video, error) {
	return UpdateOwned[model.Video](ctx, r.DB, videosTable, uuid, ownerUUID, []Assignment{
		{Column: "is_published", Expr: "NOT is_published"},
	})
}

func (r *VideoRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Video, error) {
	return DeleteOwned[model.Video](ctx, r.DB, videosTable, uuid, ownerUUID)
}

func videoKey(v model.Video) (time.Time, string) {
	return v.CreatedAt, v.UUID
}
