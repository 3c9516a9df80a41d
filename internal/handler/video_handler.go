package handler

import (
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"net/http"
)

type VideoHandler struct {
	videoService ports.VideoService
}

func NewVideoHandler(videoService ports.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// ListVideos godoc
// @Summary Список опубликованных видео
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param cursor query string false "Курсор следующей страницы"
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Success 200 {object} requestresponse.Response{data=requestresponse.ListResponse}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos [get]
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	page, err := h.videoService.ListVideos(r.Context(), cursor, limit)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, page, "videos fetched successfully")
}

// PublishVideo godoc
// @Summary Публикация видео
// @Tags Videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.PublishVideoRequest true "Метаданные видео"
// @Success 201 {object} requestresponse.Response{data=model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos [post]
func (h *VideoHandler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.PublishVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	video, err := h.videoService.PublishVideo(r.Context(), &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusCreated, video, "video published successfully")
}

// CreateUploadURL godoc
// @Summary Pre-signed URL для загрузки файла
// @Description Клиент загружает видео или превью напрямую в хранилище по выданной ссылке
// @Tags Videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.UploadURLRequest true "Тип и имя файла"
// @Success 200 {object} requestresponse.Response{data=model.UploadTarget}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/upload-url [post]
func (h *VideoHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	target, err := h.videoService.CreateUploadURL(r.Context(), &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, target, "upload url created")
}

// GetVideo godoc
// @Summary Видео по id
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.Response{data=model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/{videoId} [get]
func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	video, err := h.videoService.GetVideo(r.Context(), videoUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, video, "video fetched successfully")
}

// UpdateVideo godoc
// @Summary Обновление видео
// @Description Только владелец. Чужое видео неотличимо от несуществующего.
// @Tags Videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Param body body requestresponse.UpdateVideoRequest true "Изменяемые поля"
// @Success 200 {object} requestresponse.Response{data=model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	var req requestresponse.UpdateVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	video, err := h.videoService.UpdateVideo(r.Context(), videoUUID, &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, video, "video updated successfully")
}

// DeleteVideo godoc
// @Summary Удаление видео
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.Response
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	if err := h.videoService.DeleteVideo(r.Context(), videoUUID); err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, struct{}{}, "video deleted successfully")
}

// TogglePublishStatus godoc
// @Summary Переключение публикации
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.Response{data=model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/{videoId}/publish [patch]
func (h *VideoHandler) TogglePublishStatus(w http.ResponseWriter, r *http.Request) {
	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	video, err := h.videoService.TogglePublishStatus(r.Context(), videoUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, video, "publish status toggled successfully")
}
