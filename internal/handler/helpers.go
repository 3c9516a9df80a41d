package handler

import (
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/security"
	"content-hub-api/internal/util"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func sendResponse(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := requestresponse.Response{Status: status, Data: data, Message: message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("ошибка кодирования ответа: %v", err)
	}
}

func sendErrorResponse(w http.ResponseWriter, err error) {
	util.HandleAppError(w, err)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return util.Validation("invalid JSON body")
	}
	return nil
}

// decodeOptionalJSON : пустое тело допустимо, в том числе chunked без Content-Length
func decodeOptionalJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return util.Validation("invalid JSON body")
}

// uuidParam : параметр пути, который обязан быть UUID
func uuidParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	id, err := uuid.Parse(value)
	if err != nil {
		return "", util.Validation("invalid " + name)
	}
	return id.String(), nil
}

// pageParams : cursor и limit из query
func pageParams(r *http.Request) (string, int, error) {
	query := r.URL.Query()

	limit := defaultLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxLimit {
			return "", 0, util.Validation("limit must be between 1 and 100")
		}
		limit = parsed
	}

	return query.Get("cursor"), limit, nil
}

func setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	http.SetCookie(w, authCookie(security.AccessTokenCookie, accessToken, int(accessTTL.Seconds())))
	http.SetCookie(w, authCookie(security.RefreshTokenCookie, refreshToken, int(refreshTTL.Seconds())))
}

func clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, authCookie(security.AccessTokenCookie, "", -1))
	http.SetCookie(w, authCookie(security.RefreshTokenCookie, "", -1))
}

func authCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}
