package ports

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"context"
	"io"
)

// UserRepository : хранилище учетных данных.
// Все изменения refresh токена это одна атомарная операция UPDATE.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	SetRefreshToken(ctx context.Context, uuid string, tokenHash string) error
	ClearRefreshToken(ctx context.Context, uuid string) error
	RotateRefreshToken(ctx context.Context, uuid, oldHash, newHash string) (bool, error)
	ReplacePassword(ctx context.Context, uuid, oldHash, newHash string) (bool, error)
	UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, uuid, url string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, uuid, url string) (*model.User, error)
}

type UserService interface {
	Register(ctx context.Context, req *requestresponse.RegisterRequest) (*model.User, error)
	GetCurrentUser(ctx context.Context) (*model.User, error)
	UpdateAccount(ctx context.Context, req *requestresponse.UpdateAccountRequest) (*model.User, error)
	UpdateAvatar(ctx context.Context, file *MediaFile) (*model.User, error)
	UpdateCoverImage(ctx context.Context, file *MediaFile) (*model.User, error)
}

// MediaFile : загружаемый клиентом файл
type MediaFile struct {
	Body        io.Reader
	Size        int64
	Filename    string
	ContentType string
}
