package requestresponse

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"strings"
)

// LoginRequest : вход по username или email
type LoginRequest struct {
	Username string `json:"username" example:"ava"`
	Email    string `json:"email" example:"ava@example.com"`
	Password string `json:"password" example:"Secr3t!"`
}

func (r *LoginRequest) Identifier() string {
	if username := strings.TrimSpace(r.Username); username != "" {
		return strings.ToLower(username)
	}
	return strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	if r.Identifier() == "" {
		return util.Validation("username or email is required")
	}
	if r.Password == "" {
		return util.Validation("password is required")
	}
	return nil
}

// LoginData : ответ на успешный вход
type LoginData struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"access_token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string      `json:"refresh_token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshTokenRequest : refresh токен, если он не пришел в cookie
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// ChangePasswordRequest : смена пароля текущего пользователя
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" example:"Secr3t!"`
	NewPassword string `json:"new_password" example:"N3wSecr3t!"`
}

func (r *ChangePasswordRequest) Validate() error {
	if r.OldPassword == "" || r.NewPassword == "" {
		return util.Validation("old_password and new_password are required")
	}
	return nil
}
