package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"content-hub-api/internal/util"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

type UserService struct {
	userRepository ports.UserRepository
	storage        ports.MediaStorage
}

func NewUserService(userRepository ports.UserRepository, storage ports.MediaStorage) *UserService {
	return &UserService{
		userRepository: userRepository,
		storage:        storage,
	}
}

func (s *UserService) Register(ctx context.Context, req *requestresponse.RegisterRequest) (*model.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := security.ValidatePassword(req.Password); err != nil {
		return nil, util.Validation(err.Error())
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, util.Internal("[UserService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return created.Sanitized(), nil
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*model.User, error) {
	return security.UserFromContext(ctx)
}

func (s *UserService) UpdateAccount(ctx context.Context, req *requestresponse.UpdateAccountRequest) (*model.User, error) {
	current, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.userRepository.UpdateAccount(ctx, current.UUID, req.FullName, req.Email)
	if err != nil {
		return nil, err
	}
	return updated.Sanitized(), nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, file *ports.MediaFile) (*model.User, error) {
	return s.updateImage(ctx, "avatars", file, s.userRepository.UpdateAvatar)
}

func (s *UserService) UpdateCoverImage(ctx context.Context, file *ports.MediaFile) (*model.User, error) {
	return s.updateImage(ctx, "covers", file, s.userRepository.UpdateCoverImage)
}

// updateImage : файл кладется в хранилище, у пользователя остается только URL
func (s *UserService) updateImage(
	ctx context.Context,
	prefix string,
	file *ports.MediaFile,
	save func(ctx context.Context, uuid, url string) (*model.User, error),
) (*model.User, error) {
	current, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateImage(file); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s/%s%s", prefix, current.UUID, uuid.New().String(), strings.ToLower(path.Ext(file.Filename)))
	url, err := s.storage.Upload(ctx, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		return nil, util.Internal("[UserService] не удалось загрузить файл", err)
	}

	updated, err := save(ctx, current.UUID, url)
	if err != nil {
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			log.Printf("[UserService] не удалось удалить осиротевший файл %s: %v", key, delErr)
		}
		return nil, err
	}
	return updated.Sanitized(), nil
}

func validateImage(file *ports.MediaFile) error {
	if file == nil || file.Body == nil || file.Size == 0 {
		return util.Validation("image file is required")
	}
	if file.Size > maxImageSize {
		return util.Validation("image must be at most 5MB")
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return util.Validation("file must be an image")
	}
	return nil
}
