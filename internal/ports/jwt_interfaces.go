package ports

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/security"
)

type TokenService interface {
	IssueTokensPair(subject string) (*model.TokensPair, error)
	VerifyAccessToken(tokenStr string) (*security.Claims, error)
	VerifyRefreshToken(tokenStr string) (*security.Claims, error)
}
