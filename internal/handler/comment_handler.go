package handler

import (
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"net/http"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListVideoComments godoc
// @Summary Комментарии к видео
// @Tags Comments
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Param cursor query string false "Курсор следующей страницы"
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Success 200 {object} requestresponse.Response{data=requestresponse.ListResponse}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/{videoId} [get]
func (h *CommentHandler) ListVideoComments(w http.ResponseWriter, r *http.Request) {
	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	cursor, limit, err := pageParams(r)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	page, err := h.commentService.ListVideoComments(r.Context(), videoUUID, cursor, limit)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, page, "comments fetched successfully")
}

// AddComment godoc
// @Summary Новый комментарий
// @Tags Comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Param body body requestresponse.ContentRequest true "Текст"
// @Success 201 {object} requestresponse.Response{data=model.Comment}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "video not found"
// @Router /api/v1/comments/{videoId} [post]
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	videoUUID, err := uuidParam(r, "videoId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	var req requestresponse.ContentRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	comment, err := h.commentService.AddComment(r.Context(), videoUUID, req.Content)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusCreated, comment, "comment added successfully")
}

// UpdateComment godoc
// @Summary Изменение комментария
// @Tags Comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path string true "UUID комментария"
// @Param body body requestresponse.ContentRequest true "Текст"
// @Success 200 {object} requestresponse.Response{data=model.Comment}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/c/{commentId} [patch]
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentUUID, err := uuidParam(r, "commentId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	var req requestresponse.ContentRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), commentUUID, req.Content)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, comment, "comment updated successfully")
}

// DeleteComment godoc
// @Summary Удаление комментария
// @Tags Comments
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path string true "UUID комментария"
// @Success 200 {object} requestresponse.Response
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/c/{commentId} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentUUID, err := uuidParam(r, "commentId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), commentUUID); err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, struct{}{}, "comment deleted successfully")
}
