package handler

import (
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"net/http"
)

type PlaylistHandler struct {
	playlistService ports.PlaylistService
}

func NewPlaylistHandler(playlistService ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// CreatePlaylist godoc
// @Summary Новый плейлист
// @Tags Playlists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.PlaylistRequest true "Название и описание"
// @Success 201 {object} requestresponse.Response{data=model.Playlist}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists [post]
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.PlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(r.Context(), &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusCreated, playlist, "playlist created successfully")
}

// ListMyPlaylists godoc
// @Summary Мои плейлисты
// @Tags Playlists
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.Response{data=[]model.Playlist}
// @Router /api/v1/playlists/me [get]
func (h *PlaylistHandler) ListMyPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlistService.ListMyPlaylists(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, playlists, "playlists fetched successfully")
}

// ListUserPlaylists godoc
// @Summary Плейлисты пользователя
// @Tags Playlists
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "UUID пользователя"
// @Success 200 {object} requestresponse.Response{data=[]model.Playlist}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists/user/{userId} [get]
func (h *PlaylistHandler) ListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	userUUID, err := uuidParam(r, "userId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	playlists, err := h.playlistService.ListUserPlaylists(r.Context(), userUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, playlists, "playlists fetched successfully")
}

// GetPlaylist godoc
// @Summary Плейлист по id
// @Tags Playlists
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path string true "UUID плейлиста"
// @Success 200 {object} requestresponse.Response{data=model.Playlist}
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistUUID, err := uuidParam(r, "playlistId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	playlist, err := h.playlistService.GetPlaylist(r.Context(), playlistUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, playlist, "playlist fetched successfully")
}

// UpdatePlaylist godoc
// @Summary Изменение плейлиста
// @Tags Playlists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path string true "UUID плейлиста"
// @Param body body requestresponse.UpdatePlaylistRequest true "Изменяемые поля"
// @Success 200 {object} requestresponse.Response{data=model.Playlist}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistUUID, err := uuidParam(r, "playlistId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	var req requestresponse.UpdatePlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	playlist, err := h.playlistService.UpdatePlaylist(r.Context(), playlistUUID, &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, playlist, "playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary Удаление плейлиста
// @Tags Playlists
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path string true "UUID плейлиста"
// @Success 200 {object} requestresponse.Response
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistUUID, err := uuidParam(r, "playlistId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	if err := h.playlistService.DeletePlaylist(r.Context(), playlistUUID); err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, struct{}{}, "playlist deleted successfully")
}

// AddVideo godoc
// @Summary Добавление видео в плейлист
// @Tags Playlists
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path string true "UUID плейлиста"
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.Response{data=model.Playlist}
// @Failure 404 {object} requestresponse.ErrorResponse "Плейлист или видео не найдены"
// @Failure 409 {object} requestresponse.ErrorResponse "Видео уже в плейлисте"
// @Router /api/v1/playlists/{playlistId}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	playlistUUID, videoUUID, ok := playlistVideoParams(w, r)
	if !ok {
		return
	}

	playlist, err := h.playlistService.AddVideo(r.Context(), playlistUUID, videoUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, playlist, "video added to playlist successfully")
}

// RemoveVideo godoc
// @Summary Удаление видео из плейлиста
// @Tags Playlists
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path string true "UUID плейлиста"
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.Response{data=model.Playlist}
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists/{playlistId}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	playlistUUID, videoUUID, ok := playlistVideoParams(w, r)
	if !ok {
		return
	}

	playlist, err := h.playlistService.RemoveVideo(r.Context(), playlistUUID, videoUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, playlist, "video removed from playlist successfully")
}

func playlistVideoParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	playlistUUID, err := uuidParam(r, "playlistId")
	if err != nil {
		sendErrorResponse(w, err)
		return "", "", false
	}

	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return "", "", false
	}

	return playlistUUID, videoUUID, true
}
