package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"content-hub-api/internal/util"
	"context"
	"errors"
	"log"
)

const invalidCredentials = "invalid credentials"

// AuthenticationService : менеджер сессий.
// У пользователя не больше одного действующего refresh токена,
// в БД хранится только его sha256.
type AuthenticationService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
}

func NewAuthenticationService(userRepository ports.UserRepository, tokenService ports.TokenService) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

// Login : identifier это username или email.
// Неизвестный пользователь и неверный пароль дают одинаковый ответ.
func (s *AuthenticationService) Login(ctx context.Context, identifier, password string) (*model.LoginResult, error) {
	user, err := s.userRepository.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, util.ErrNotFoundOrForbidden) {
			security.BurnPasswordCheck(password)
			return nil, util.Unauthorized(invalidCredentials)
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, util.Unauthorized(invalidCredentials)
	}

	tokens, err := s.tokenService.IssueTokensPair(user.UUID)
	if err != nil {
		return nil, util.Internal("ошибка генерации токенов", err)
	}

	if err := s.userRepository.SetRefreshToken(ctx, user.UUID, security.HashToken(tokens.RefreshToken)); err != nil {
		return nil, err
	}

	return &model.LoginResult{User: user.Sanitized(), Tokens: tokens}, nil
}

// RefreshToken : проверяет предъявленный refresh токен и ротирует его.
//
// Замена хранимого хэша идет через compare-and-swap, поэтому из
// нескольких параллельных запросов с одним токеном успешен только один.
// Старый токен после ротации больше не принимается.
func (s *AuthenticationService) RefreshToken(ctx context.Context, presented string) (*model.TokensPair, error) {
	if presented == "" {
		return nil, util.Unauthorized("unauthorized request, refresh token missing")
	}

	claims, err := s.tokenService.VerifyRefreshToken(presented)
	if err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			return nil, util.Unauthorized("refresh token expired")
		}
		return nil, util.Unauthorized("invalid refresh token")
	}

	user, err := s.userRepository.FindByUUID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, util.ErrNotFoundOrForbidden) {
			return nil, util.Unauthorized("invalid refresh token")
		}
		return nil, err
	}

	presentedHash := security.HashToken(presented)
	if user.RefreshTokenHash == nil || !security.TokenHashEqual(*user.RefreshTokenHash, presentedHash) {
		log.Printf("refresh токен пользователя %s не совпадает с сохраненным", user.UUID)
		return nil, util.Unauthorized("refresh token is expired or used")
	}

	tokens, err := s.tokenService.IssueTokensPair(user.UUID)
	if err != nil {
		return nil, util.Internal("ошибка генерации токенов", err)
	}

	swapped, err := s.userRepository.RotateRefreshToken(ctx, user.UUID, presentedHash, security.HashToken(tokens.RefreshToken))
	if err != nil {
		return nil, err
	}
	if !swapped {
		log.Printf("refresh токен пользователя %s уже был ротирован параллельным запросом", user.UUID)
		return nil, util.Unauthorized("refresh token is expired or used")
	}

	return tokens, nil
}

// Logout : повторный вызов не ошибка
func (s *AuthenticationService) Logout(ctx context.Context, userUUID string) error {
	return s.userRepository.ClearRefreshToken(ctx, userUUID)
}

// ChangePassword : после смены пароля текущая сессия завершается
func (s *AuthenticationService) ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error {
	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, util.ErrNotFoundOrForbidden) {
			return util.Unauthorized("user not found")
		}
		return err
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return util.Unauthorized("invalid old password")
	}

	if err := security.ValidatePassword(newPassword); err != nil {
		return util.Validation(err.Error())
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return util.Internal("не удалось создать хэш пароля", err)
	}

	replaced, err := s.userRepository.ReplacePassword(ctx, user.UUID, user.PasswordHash, hash)
	if err != nil {
		return err
	}
	if !replaced {
		return util.Unauthorized("password was changed concurrently, please log in again")
	}

	return nil
}
