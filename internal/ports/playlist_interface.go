package ports

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"context"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error)
	GetByUUID(ctx context.Context, uuid string) (*model.Playlist, error)
	ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error)
	Update(ctx context.Context, uuid, ownerUUID string, update *model.PlaylistUpdate) (*model.Playlist, error)
	Delete(ctx context.Context, uuid, ownerUUID string) (*model.Playlist, error)
	AddVideo(ctx context.Context, uuid, ownerUUID, videoUUID string) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, uuid, ownerUUID, videoUUID string) (*model.Playlist, error)
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, req *requestresponse.PlaylistRequest) (*model.Playlist, error)
	GetPlaylist(ctx context.Context, uuid string) (*model.Playlist, error)
	ListMyPlaylists(ctx context.Context) ([]model.Playlist, error)
	ListUserPlaylists(ctx context.Context, userUUID string) ([]model.Playlist, error)
	UpdatePlaylist(ctx context.Context, uuid string, req *requestresponse.UpdatePlaylistRequest) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, uuid string) error
	AddVideo(ctx context.Context, uuid, videoUUID string) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, uuid, videoUUID string) (*model.Playlist, error)
}
