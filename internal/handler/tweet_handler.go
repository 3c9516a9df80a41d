package handler

import (
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"net/http"
)

type TweetHandler struct {
	tweetService ports.TweetService
}

func NewTweetHandler(tweetService ports.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// CreateTweet godoc
// @Summary Новый твит
// @Tags Tweets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.ContentRequest true "Текст"
// @Success 201 {object} requestresponse.Response{data=model.Tweet}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/tweets [post]
func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.ContentRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	tweet, err := h.tweetService.CreateTweet(r.Context(), req.Content)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusCreated, tweet, "tweet created successfully")
}

// ListMyTweets godoc
// @Summary Мои твиты
// @Tags Tweets
// @Produce json
// @Security ApiKeyAuth
// @Param cursor query string false "Курсор следующей страницы"
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Success 200 {object} requestresponse.Response{data=requestresponse.ListResponse}
// @Router /api/v1/tweets/me [get]
func (h *TweetHandler) ListMyTweets(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	page, err := h.tweetService.ListMyTweets(r.Context(), cursor, limit)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, page, "tweets fetched successfully")
}

// ListUserTweets godoc
// @Summary Твиты пользователя
// @Tags Tweets
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "UUID пользователя"
// @Param cursor query string false "Курсор следующей страницы"
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Success 200 {object} requestresponse.Response{data=requestresponse.ListResponse}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/tweets/user/{userId} [get]
func (h *TweetHandler) ListUserTweets(w http.ResponseWriter, r *http.Request) {
	userUUID, err := uuidParam(r, "userId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	cursor, limit, err := pageParams(r)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	page, err := h.tweetService.ListUserTweets(r.Context(), userUUID, cursor, limit)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, page, "tweets fetched successfully")
}

// UpdateTweet godoc
// @Summary Изменение твита
// @Tags Tweets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tweetId path string true "UUID твита"
// @Param body body requestresponse.ContentRequest true "Текст"
// @Success 200 {object} requestresponse.Response{data=model.Tweet}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	tweetUUID, err := uuidParam(r, "tweetId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	var req requestresponse.ContentRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	tweet, err := h.tweetService.UpdateTweet(r.Context(), tweetUUID, req.Content)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, tweet, "tweet updated successfully")
}

// DeleteTweet godoc
// @Summary Удаление твита
// @Tags Tweets
// @Produce json
// @Security ApiKeyAuth
// @Param tweetId path string true "UUID твита"
// @Success 200 {object} requestresponse.Response
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetUUID, err := uuidParam(r, "tweetId")
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	if err := h.tweetService.DeleteTweet(r.Context(), tweetUUID); err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, struct{}{}, "tweet deleted successfully")
}
