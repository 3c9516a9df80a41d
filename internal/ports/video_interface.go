package ports

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"context"
)

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) (*model.Video, error)
	GetByUUID(ctx context.Context, uuid string) (*model.Video, error)
	List(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error)
	ListByOwner(ctx context.Context, ownerUUID, cursor string, limit int) (*model.Page[model.Video], error)
	Update(ctx context.Context, uuid, ownerUUID string, update *model.VideoUpdate) (*model.Video, error)
	TogglePublish(ctx context.Context, uuid, ownerUUID string) (*model.Video, error)
	Delete(ctx context.Context, uuid, ownerUUID string) (*model.Video, error)
}

type VideoService interface {
	ListVideos(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error)
	PublishVideo(ctx context.Context, req *requestresponse.PublishVideoRequest) (*model.Video, error)
	GetVideo(ctx context.Context, uuid string) (*model.Video, error)
	UpdateVideo(ctx context.Context, uuid string, req *requestresponse.UpdateVideoRequest) (*model.Video, error)
	DeleteVideo(ctx context.Context, uuid string) error
	TogglePublishStatus(ctx context.Context, uuid string) (*model.Video, error)
	CreateUploadURL(ctx context.Context, req *requestresponse.UploadURLRequest) (*model.UploadTarget, error)
}
