package model

import "time"

// User : корень учетных данных.
// RefreshTokenHash == nil означает, что активной сессии нет.
type User struct {
	UUID             string    `db:"uuid" json:"uuid"`
	Username         string    `db:"username" json:"username"`
	Email            string    `db:"email" json:"email"`
	FullName         string    `db:"full_name" json:"full_name"`
	AvatarURL        string    `db:"avatar_url" json:"avatar_url"`
	CoverImageURL    string    `db:"cover_image_url" json:"cover_image_url"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	RefreshTokenHash *string   `db:"refresh_token_hash" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Sanitized : копия пользователя без хэша пароля и refresh токена
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	clean.RefreshTokenHash = nil
	return &clean
}
