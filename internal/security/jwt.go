package security

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("невалидный токен")
	ErrTokenExpired = errors.New("токен просрочен")
)

type Claims struct {
	jwt.RegisteredClaims
}

// JWTService : выпускает и проверяет access/refresh токены.
// Оба класса токенов имеют одинаковую форму, различаются секретом и TTL.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}

	return &JWTService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        cfg.Issuer,
		now:           time.Now,
	}, nil
}

// AccessTTL : время жизни access токена, оно же Max-Age cookie
func (service *JWTService) AccessTTL() time.Duration {
	return service.accessTTL
}

func (service *JWTService) RefreshTTL() time.Duration {
	return service.refreshTTL
}

func (service *JWTService) IssueAccessToken(subject string) (string, error) {
	return service.issue(subject, service.accessSecret, service.accessTTL)
}

func (service *JWTService) IssueRefreshToken(subject string) (string, error) {
	return service.issue(subject, service.refreshSecret, service.refreshTTL)
}

func (service *JWTService) IssueTokensPair(subject string) (*model.TokensPair, error) {
	accessToken, err := service.IssueAccessToken(subject)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.IssueRefreshToken(subject)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) issue(subject string, secret []byte, ttl time.Duration) (string, error) {
	now := service.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString(secret)
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return signed, nil
}

func (service *JWTService) VerifyAccessToken(tokenStr string) (*Claims, error) {
	return service.Verify(tokenStr, service.accessSecret)
}

func (service *JWTService) VerifyRefreshToken(tokenStr string) (*Claims, error) {
	return service.Verify(tokenStr, service.refreshSecret)
}

// Verify : сначала подпись (ErrTokenInvalid), затем срок действия (ErrTokenExpired).
// Валидацию claims библиотеки отключаем, чтобы порядок проверок был явным;
// HMAC подпись сравнивается через hmac.Equal.
func (service *JWTService) Verify(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrTokenInvalid
	}

	if !service.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// HashToken : в БД хранится только sha256 от refresh токена
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenHashEqual : сравнение хэшей за постоянное время
func TokenHashEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
