package handler

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/ports"
	"net/http"
)

type LikeHandler struct {
	likeService ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideoLike godoc
// @Summary Лайк видео
// @Description Повторный вызов снимает лайк
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.Response{data=model.ToggleResult}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeTargetVideo, "videoId")
}

// ToggleCommentLike godoc
// @Summary Лайк комментария
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path string true "UUID комментария"
// @Success 200 {object} requestresponse.Response{data=model.ToggleResult}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeTargetComment, "commentId")
}

// ToggleTweetLike godoc
// @Summary Лайк твита
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param tweetId path string true "UUID твита"
// @Success 200 {object} requestresponse.Response{data=model.ToggleResult}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeTargetTweet, "tweetId")
}

// ListLikedVideos godoc
// @Summary Понравившиеся видео
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.Response{data=[]model.Video}
// @Router /api/v1/likes/videos [get]
func (h *LikeHandler) ListLikedVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.likeService.ListLikedVideos(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, videos, "liked videos fetched successfully")
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, targetType model.LikeTargetType, param string) {
	targetUUID, err := uuidParam(r, param)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	result, err := h.likeService.Toggle(r.Context(), targetType, targetUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, result, "like "+string(result.State))
}
