package security

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash сравнивается, когда пользователь не найден,
// чтобы время ответа не выдавало существование логина
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("content-hub-api/dummy"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if len(password) > 72 {
		return fmt.Errorf("password must be at most 72 bytes")
	}

	var letters, digits int
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			letters++
		case unicode.IsDigit(c):
			digits++
		}
	}

	if letters == 0 {
		return fmt.Errorf("password must contain at least one letter")
	}
	if digits == 0 {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}
