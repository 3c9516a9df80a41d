package requestresponse

import (
	"content-hub-api/internal/util"
	"net/mail"
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,30}$`)

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	FullName string `json:"full_name" example:"Ava Stone"`
	Email    string `json:"email" example:"ava@example.com"`
	Username string `json:"username" example:"ava"`
	Password string `json:"password" example:"Secr3t!"`
}

// Normalize : username и email храним в нижнем регистре
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
}

func (r *RegisterRequest) Validate() error {
	if r.FullName == "" || r.Email == "" || r.Username == "" || r.Password == "" {
		return util.Validation("all fields are required")
	}
	if !usernamePattern.MatchString(r.Username) {
		return util.Validation("username must be 3-30 characters of a-z, 0-9, '_' or '.'")
	}
	return validateEmail(r.Email)
}

// UpdateAccountRequest : тело запроса на обновление профиля
type UpdateAccountRequest struct {
	FullName string `json:"full_name" example:"Ava Stone"`
	Email    string `json:"email" example:"ava@example.com"`
}

func (r *UpdateAccountRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *UpdateAccountRequest) Validate() error {
	if r.FullName == "" || r.Email == "" {
		return util.Validation("full_name and email are required")
	}
	return validateEmail(r.Email)
}

func validateEmail(email string) error {
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return util.Validation("invalid email")
	}
	return nil
}
