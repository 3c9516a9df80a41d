package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const userColumns = `uuid, username, email, full_name, avatar_url, cover_image_url,
	password_hash, refresh_token_hash, created_at, updated_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, full_name, avatar_url, cover_image_url, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + userColumns

	var created model.User
	err := sqlx.GetContext(ctx, r.DB, &created, query,
		user.UUID,
		user.Username,
		user.Email,
		user.FullName,
		user.AvatarURL,
		user.CoverImageURL,
		user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, util.Conflict("user with email or username already exists")
		}
		return nil, dbError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return &created, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	return r.getUser(ctx, "[UserRepo] не удалось найти пользователя в БД", query, uuid)
}

// FindByUsernameOrEmail : identifier сравнивается и с username, и с email
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1 LIMIT 1`
	return r.getUser(ctx, "[UserRepo] не удалось найти пользователя по username/email", query, identifier)
}

// SetRefreshToken : перезаписывает refresh токен, предыдущий становится недействительным
func (r *UserRepository) SetRefreshToken(ctx context.Context, uuid string, tokenHash string) error {
	query := `UPDATE users SET refresh_token_hash = $2, updated_at = NOW() WHERE uuid = $1`
	return r.execOne(ctx, "[UserRepo] не удалось сохранить refresh токен", query, uuid, tokenHash)
}

// ClearRefreshToken : идемпотентно завершает сессию
func (r *UserRepository) ClearRefreshToken(ctx context.Context, uuid string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, updated_at = NOW() WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid); err != nil {
		return dbError("[UserRepo] не удалось удалить refresh токен", err)
	}
	return nil
}

// RotateRefreshToken : compare-and-swap refresh токена.
// false означает, что токен уже был заменен другим запросом.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, uuid, oldHash, newHash string) (bool, error) {
	query := `
		UPDATE users
		SET refresh_token_hash = $3, updated_at = NOW()
		WHERE uuid = $1 AND refresh_token_hash = $2
	`
	return r.execSwapped(ctx, "[UserRepo] не удалось обновить refresh токен", query, uuid, oldHash, newHash)
}

// ReplacePassword : меняет хэш пароля, если он не поменялся с момента проверки,
// и сбрасывает активную сессию
func (r *UserRepository) ReplacePassword(ctx context.Context, uuid, oldHash, newHash string) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $3, refresh_token_hash = NULL, updated_at = NOW()
		WHERE uuid = $1 AND password_hash = $2
	`
	return r.execSwapped(ctx, "[UserRepo] не удалось обновить пароль", query, uuid, oldHash, newHash)
}

// UpdateAccount : обновляет имя и email
func (r *UserRepository) UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error) {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, updated_at = NOW()
		WHERE uuid = $1
		RETURNING ` + userColumns

	user, err := r.getUser(ctx, "[UserRepo] не удалось обновить пользователя", query, uuid, fullName, email)
	if err != nil && isUniqueViolation(err) {
		return nil, util.Conflict("user with this email already exists")
	}
	return user, err
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, uuid, url string) (*model.User, error) {
	query := `UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE uuid = $1 RETURNING ` + userColumns
	return r.getUser(ctx, "[UserRepo] не удалось обновить аватар", query, uuid, url)
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, uuid, url string) (*model.User, error) {
	query := `UPDATE users SET cover_image_url = $2, updated_at = NOW() WHERE uuid = $1 RETURNING ` + userColumns
	return r.getUser(ctx, "[UserRepo] не удалось обновить обложку", query, uuid, url)
}

func (r *UserRepository) getUser(ctx context.Context, message, query string, args ...interface{}) (*model.User, error) {
	var user model.User
	if err := sqlx.GetContext(ctx, r.DB, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFoundOrForbidden("user not found")
		}
		return nil, dbError(message, err)
	}
	return &user, nil
}

func (r *UserRepository) execOne(ctx context.Context, message, query string, args ...interface{}) error {
	swapped, err := r.execSwapped(ctx, message, query, args...)
	if err != nil {
		return err
	}
	if !swapped {
		return util.NotFoundOrForbidden("user not found")
	}
	return nil
}

func (r *UserRepository) execSwapped(ctx context.Context, message, query string, args ...interface{}) (bool, error) {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dbError(message, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, dbError("[UserRepo] не удалось проверить количество обновленных строк", err)
	}

	return rowsAffected == 1, nil
}
