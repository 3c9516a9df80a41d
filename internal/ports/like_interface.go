package ports

import (
	"content-hub-api/internal/model"
	"context"
)

type LikeRepository interface {
	TargetExists(ctx context.Context, requesterUUID string, targetType model.LikeTargetType, targetUUID string) (bool, error)
	Find(ctx context.Context, ownerUUID string, targetType model.LikeTargetType, targetUUID string) (*model.Like, error)
	InsertIfAbsent(ctx context.Context, like *model.Like) (bool, error)
	Delete(ctx context.Context, uuid, ownerUUID string) (bool, error)
	ListLikedVideos(ctx context.Context, ownerUUID string) ([]model.Video, error)
}

type LikeService interface {
	Toggle(ctx context.Context, targetType model.LikeTargetType, targetUUID string) (*model.ToggleResult, error)
	ListLikedVideos(ctx context.Context) ([]model.Video, error)
}
