package service_test

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_Create(t *testing.T) {
	playlists := new(MockPlaylistRepository)
	playlistService := service.NewPlaylistService(playlists)

	playlists.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Playlist) bool {
		return p.OwnerUUID == "ava" && p.Name == "Favourites"
	})).Return(&model.Playlist{UUID: "p1", OwnerUUID: "ava", Name: "Favourites"}, nil)

	playlist, err := playlistService.CreatePlaylist(contextWithUser("ava"), &requestresponse.PlaylistRequest{Name: "Favourites"})
	require.NoError(t, err)
	assert.Equal(t, "p1", playlist.UUID)

	_, err = playlistService.CreatePlaylist(contextWithUser("ava"), &requestresponse.PlaylistRequest{Name: " "})
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestPlaylistService_ScopesMutationsToRequester(t *testing.T) {
	playlists := new(MockPlaylistRepository)
	playlistService := service.NewPlaylistService(playlists)

	playlists.On("AddVideo", mock.Anything, "p1", "ben", "v1").
		Return(nil, util.NotFoundOrForbidden("playlist not found"))
	playlists.On("Delete", mock.Anything, "p1", "ben").
		Return(nil, util.NotFoundOrForbidden("playlist not found"))
	playlists.On("RemoveVideo", mock.Anything, "p1", "ava", "v1").
		Return(&model.Playlist{UUID: "p1", OwnerUUID: "ava"}, nil)

	_, err := playlistService.AddVideo(contextWithUser("ben"), "p1", "v1")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)

	err = playlistService.DeletePlaylist(contextWithUser("ben"), "p1")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)

	_, err = playlistService.RemoveVideo(contextWithUser("ava"), "p1", "v1")
	assert.NoError(t, err)

	playlists.AssertExpectations(t)
}

func TestPlaylistService_Update(t *testing.T) {
	playlists := new(MockPlaylistRepository)
	playlistService := service.NewPlaylistService(playlists)

	description := "Road trips"
	playlists.On("Update", mock.Anything, "p1", "ava", mock.MatchedBy(func(u *model.PlaylistUpdate) bool {
		return u.Name == nil && u.Description != nil && *u.Description == description
	})).Return(&model.Playlist{UUID: "p1", Description: description}, nil)

	playlist, err := playlistService.UpdatePlaylist(contextWithUser("ava"), "p1", &requestresponse.UpdatePlaylistRequest{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, description, playlist.Description)

	_, err = playlistService.UpdatePlaylist(contextWithUser("ava"), "p1", &requestresponse.UpdatePlaylistRequest{})
	assert.ErrorIs(t, err, util.ErrValidation)
}
