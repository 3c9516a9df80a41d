package ports

import (
	"content-hub-api/internal/model"
	"context"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	ListByVideo(ctx context.Context, requesterUUID, videoUUID, cursor string, limit int) (*model.Page[model.Comment], error)
	Update(ctx context.Context, uuid, ownerUUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, uuid, ownerUUID string) (*model.Comment, error)
}

type CommentService interface {
	ListVideoComments(ctx context.Context, videoUUID, cursor string, limit int) (*model.Page[model.Comment], error)
	AddComment(ctx context.Context, videoUUID, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, uuid, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, uuid string) error
}
