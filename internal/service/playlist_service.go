package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"context"

	"github.com/google/uuid"
)

type PlaylistService struct {
	playlistRepository ports.PlaylistRepository
}

func NewPlaylistService(playlistRepository ports.PlaylistRepository) *PlaylistService {
	return &PlaylistService{playlistRepository: playlistRepository}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, req *requestresponse.PlaylistRequest) (*model.Playlist, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.playlistRepository.Create(ctx, &model.Playlist{
		UUID:        uuid.New().String(),
		OwnerUUID:   owner.UUID,
		Name:        req.Name,
		Description: req.Description,
	})
}

// GetPlaylist : чтение доступно любому авторизованному пользователю
func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistUUID string) (*model.Playlist, error) {
	return s.playlistRepository.GetByUUID(ctx, playlistUUID)
}

func (s *PlaylistService) ListMyPlaylists(ctx context.Context) ([]model.Playlist, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.playlistRepository.ListByOwner(ctx, owner.UUID)
}

func (s *PlaylistService) ListUserPlaylists(ctx context.Context, userUUID string) ([]model.Playlist, error) {
	return s.playlistRepository.ListByOwner(ctx, userUUID)
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistUUID string, req *requestresponse.UpdatePlaylistRequest) (*model.Playlist, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	update, err := req.ToUpdate()
	if err != nil {
		return nil, err
	}

	return s.playlistRepository.Update(ctx, playlistUUID, owner.UUID, update)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistUUID string) error {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return err
	}

	_, err = s.playlistRepository.Delete(ctx, playlistUUID, owner.UUID)
	return err
}

func (s *PlaylistService) AddVideo(ctx context.Context, playlistUUID, videoUUID string) (*model.Playlist, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.playlistRepository.AddVideo(ctx, playlistUUID, owner.UUID, videoUUID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistUUID, videoUUID string) (*model.Playlist, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.playlistRepository.RemoveVideo(ctx, playlistUUID, owner.UUID, videoUUID)
}
