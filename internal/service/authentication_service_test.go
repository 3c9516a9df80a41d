package service_test

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/security"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*service.AuthenticationService, *memoryUserRepository, *security.JWTService) {
	t.Helper()

	jwtService, err := security.NewJWTService(&config.JWTConfig{
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
		AccessTokenTTL:     "15m",
		RefreshTokenTTL:    "240h",
	})
	require.NoError(t, err)

	hash, err := security.HashPassword("Secr3t!")
	require.NoError(t, err)

	users := newMemoryUserRepository()
	users.add(&model.User{UUID: "ava", Username: "ava", Email: "ava@example.com", PasswordHash: hash})

	return service.NewAuthenticationService(users, jwtService), users, jwtService
}

func TestLogin_Success(t *testing.T) {
	authService, users, jwtService := newTestAuthService(t)

	result, err := authService.Login(context.Background(), "ava@example.com", "Secr3t!")
	require.NoError(t, err)

	assert.Equal(t, "ava", result.User.UUID)
	assert.Empty(t, result.User.PasswordHash)
	assert.Nil(t, result.User.RefreshTokenHash)

	claims, err := jwtService.VerifyAccessToken(result.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ava", claims.Subject)

	stored := users.refreshHash("ava")
	require.NotNil(t, stored)
	assert.Equal(t, security.HashToken(result.Tokens.RefreshToken), *stored)
}

func TestLogin_UniformFailure(t *testing.T) {
	authService, _, _ := newTestAuthService(t)

	_, wrongPassword := authService.Login(context.Background(), "ava", "wrong1")
	_, unknownUser := authService.Login(context.Background(), "nobody", "Secr3t!")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.ErrorIs(t, wrongPassword, util.ErrUnauthorized)
	assert.Equal(t, util.PublicMessage(wrongPassword), util.PublicMessage(unknownUser))
	assert.Equal(t, "invalid credentials", util.PublicMessage(unknownUser))
}

func TestLogin_ReplacesPreviousSession(t *testing.T) {
	authService, _, _ := newTestAuthService(t)
	ctx := context.Background()

	first, err := authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)
	_, err = authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)

	_, err = authService.RefreshToken(ctx, first.Tokens.RefreshToken)
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}

func TestRefreshToken_Rotation(t *testing.T) {
	authService, _, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)

	rotated, err := authService.RefreshToken(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, rotated.RefreshToken)

	_, err = authService.RefreshToken(ctx, login.Tokens.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "refresh token is expired or used", util.PublicMessage(err))

	_, err = authService.RefreshToken(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshToken_Rejections(t *testing.T) {
	authService, _, jwtService := newTestAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)

	ghostPair, err := jwtService.IssueTokensPair("ghost")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "пустой токен", token: ""},
		{name: "мусор", token: "garbage"},
		{name: "access вместо refresh", token: login.Tokens.AccessToken},
		{name: "пользователь не существует", token: ghostPair.RefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.RefreshToken(ctx, tt.token)
			assert.ErrorIs(t, err, util.ErrUnauthorized)
			assert.Equal(t, 401, util.StatusCode(err))
		})
	}
}

func TestRefreshToken_ConcurrentOnlyOneWins(t *testing.T) {
	authService, _, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		start     = make(chan struct{})
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := authService.RefreshToken(ctx, login.Tokens.RefreshToken); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestLogout(t *testing.T) {
	authService, users, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, "ava"))
	require.NoError(t, authService.Logout(ctx, "ava"))
	assert.Nil(t, users.refreshHash("ava"))

	_, err = authService.RefreshToken(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	authService, _, _ := newTestAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "ava", "Secr3t!")
	require.NoError(t, err)

	err = authService.ChangePassword(ctx, "ava", "wrong1", "N3wSecret")
	assert.ErrorIs(t, err, util.ErrUnauthorized)
	assert.Equal(t, "invalid old password", util.PublicMessage(err))

	err = authService.ChangePassword(ctx, "ava", "Secr3t!", "short")
	assert.ErrorIs(t, err, util.ErrValidation)

	require.NoError(t, authService.ChangePassword(ctx, "ava", "Secr3t!", "N3wSecret"))

	_, err = authService.RefreshToken(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, util.ErrUnauthorized)

	_, err = authService.Login(ctx, "ava", "Secr3t!")
	assert.ErrorIs(t, err, util.ErrUnauthorized)

	_, err = authService.Login(ctx, "ava", "N3wSecret")
	assert.NoError(t, err)
}
