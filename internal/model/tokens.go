package model

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен (JWT, одноразовый)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}

// LoginResult : результат входа, пользователь уже очищен от секретов
type LoginResult struct {
	User   *User
	Tokens *TokensPair
}
