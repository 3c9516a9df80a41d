package ports

import (
	"content-hub-api/internal/model"
	"context"
)

type AuthenticationService interface {
	Login(ctx context.Context, identifier, password string) (*model.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, userUUID string) error
	ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error
}
