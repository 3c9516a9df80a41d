package security

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// UserFinder : чтение пользователя без хэша пароля и refresh токена
type UserFinder interface {
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
}

type AccessTokenVerifier interface {
	VerifyAccessToken(tokenStr string) (*Claims, error)
}

// Authenticator : проверяет access токен на каждом защищенном запросе.
// Путь только читает, записи в БД здесь нет.
type Authenticator struct {
	verifier AccessTokenVerifier
	users    UserFinder
}

func NewAuthenticator(verifier AccessTokenVerifier, users UserFinder) *Authenticator {
	return &Authenticator{verifier: verifier, users: users}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user, err := a.Authenticate(request)
		if err != nil {
			util.HandleAppError(writer, err)
			return
		}

		next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user)))
	})
}

// Authenticate : cookie имеет приоритет над заголовком Authorization
func (a *Authenticator) Authenticate(request *http.Request) (*model.User, error) {
	token := ExtractAccessToken(request)
	if token == "" {
		return nil, util.Unauthorized("unauthorized request, token missing")
	}

	claims, err := a.verifier.VerifyAccessToken(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, util.TokenExpired("access token expired, please log in again")
		}
		return nil, util.Unauthorized("invalid access token")
	}

	user, err := a.users.FindByUUID(request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, util.ErrNotFoundOrForbidden) {
			log.Printf("токен ссылается на несуществующего пользователя %s", claims.Subject)
			return nil, util.Unauthorized("invalid access token, user not found")
		}
		return nil, util.Internal("не удалось загрузить пользователя", err)
	}

	return user.Sanitized(), nil
}

func ExtractAccessToken(request *http.Request) string {
	if cookie, err := request.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authorizationHeader := request.Header.Get("Authorization")
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func UserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, util.Unauthorized("unauthorized request")
	}
	return user, nil
}
