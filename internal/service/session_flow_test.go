package service_test

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/repository"
	"content-hub-api/internal/security"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authenticatedRequest(accessToken string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	request.Header.Set("Authorization", "Bearer "+accessToken)
	return request
}

// Токен из Login проходит через middleware и даёт ту же личность
func TestLogin_TokenResolvesSameUserInMiddleware(t *testing.T) {
	authService, users, jwtService := newTestAuthService(t)
	authenticator := security.NewAuthenticator(jwtService, users)

	result, err := authService.Login(context.Background(), "ava", "Secr3t!")
	require.NoError(t, err)

	var resolved *model.User
	protected := authenticator.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved, err = security.UserFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	protected.ServeHTTP(recorder, authenticatedRequest(result.Tokens.AccessToken))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, result.User.UUID, resolved.UUID)
	assert.Equal(t, "ava", resolved.Username)
	assert.Empty(t, resolved.PasswordHash)

	// refresh токен как access не принимается
	recorder = httptest.NewRecorder()
	protected.ServeHTTP(recorder, authenticatedRequest(result.Tokens.RefreshToken))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// Бен входит в систему и пытается переименовать видео Авы.
// UPDATE фильтруется по владельцу из токена, наружу уходит 404.
func TestForeignVideoUpdateThroughSession(t *testing.T) {
	authService, users, jwtService := newTestAuthService(t)
	hash, err := security.HashPassword("B3nPass")
	require.NoError(t, err)
	users.add(&model.User{UUID: "ben", Username: "ben", Email: "ben@example.com", PasswordHash: hash})

	db, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	videoRepo := repository.NewVideoRepository(&config.Database{DB: sqlx.NewDb(db, "postgres")})
	videoService := service.NewVideoService(videoRepo, new(MockVideoCache), new(MockMediaStorage), 15*time.Minute)

	sqlMock.ExpectQuery(`UPDATE videos SET title = \$3, updated_at = NOW\(\) WHERE uuid = \$1 AND owner_uuid = \$2`).
		WithArgs("ava-video", "ben", "Hijacked").
		WillReturnError(sql.ErrNoRows)

	result, err := authService.Login(context.Background(), "ben", "B3nPass")
	require.NoError(t, err)

	title := "Hijacked"
	protected := security.NewAuthenticator(jwtService, users).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := videoService.UpdateVideo(r.Context(), "ava-video", &requestresponse.UpdateVideoRequest{Title: &title})
		util.HandleAppError(w, err)
	}))

	recorder := httptest.NewRecorder()
	protected.ServeHTTP(recorder, authenticatedRequest(result.Tokens.AccessToken))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "video not found", body.Message)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
