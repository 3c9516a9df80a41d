package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var commentsTable = OwnedTable{
	Resource: "comment",
	Name:     "comments",
	Columns:  `uuid, owner_uuid, video_uuid, content, created_at, updated_at`,
}

type CommentRepository struct {
	*config.Database
}

func NewCommentRepository(database *config.Database) *CommentRepository {
	return &CommentRepository{database}
}

// Create : вставка только если видео видно автору комментария.
// Внешний ключ ловит видео, удаленное между проверкой и вставкой.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	query := `
	INSERT INTO comments (uuid, owner_uuid, video_uuid, content)
	SELECT $1::uuid, $2::uuid, v.uuid, $4::text
	FROM videos v
	WHERE v.uuid = $3 AND ` + visibleVideoCond("v", 2) + `
	RETURNING ` + commentsTable.Columns

	var created model.Comment
	err := sqlx.GetContext(ctx, r.DB, &created, query,
		comment.UUID,
		comment.OwnerUUID,
		comment.VideoUUID,
		comment.Content,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isForeignKeyViolation(err) {
			return nil, util.NotFoundOrForbidden("video not found")
		}
		return nil, dbError("[CommentRepo] ошибка вставки комментария", err)
	}

	return &created, nil
}

// ListByVideo : комментарии к чужому неопубликованному видео не отдаются
func (r *CommentRepository) ListByVideo(ctx context.Context, requesterUUID, videoUUID, cursor string, limit int) (*model.Page[model.Comment], error) {
	base := `SELECT ` + commentsTable.Columns + ` FROM comments
	WHERE video_uuid = $1
	AND EXISTS (SELECT 1 FROM videos v WHERE v.uuid = $1 AND ` + visibleVideoCond("v", 2) + `)`
	return selectPage(ctx, r.DB, base, cursor, limit, func(c model.Comment) (time.Time, string) {
		return c.CreatedAt, c.UUID
	}, videoUUID, requesterUUID)
}

func (r *CommentRepository) Update(ctx context.Context, uuid, ownerUUID, content string) (*model.Comment, error) {
	return UpdateOwned[model.Comment](ctx, r.DB, commentsTable, uuid, ownerUUID, []Assignment{
		{Column: "content", Value: content},
	})
}

func (r *CommentRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Comment, error) {
	return DeleteOwned[model.Comment](ctx, r.DB, commentsTable, uuid, ownerUUID)
}
