package handler

import (
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"net/http"
	"time"
)

type AuthenticationHandler struct {
	authenticationService ports.AuthenticationService
	accessTTL             time.Duration
	refreshTTL            time.Duration
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService: authenticationService,
		accessTTL:             accessTTL,
		refreshTTL:            refreshTTL,
	}
}

// Login godoc
// @Summary Вход пользователя
// @Description Вход по username или email и паролю. Токены возвращаются в теле и в HttpOnly cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Учетные данные"
// @Success 200 {object} requestresponse.Response{data=requestresponse.LoginData}
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "invalid credentials"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		sendErrorResponse(w, err)
		return
	}

	result, err := h.authenticationService.Login(r.Context(), req.Identifier(), req.Password)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	setAuthCookies(w, result.Tokens.AccessToken, result.Tokens.RefreshToken, h.accessTTL, h.refreshTTL)
	sendResponse(w, http.StatusOK, requestresponse.LoginData{
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "user logged in successfully")
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Ротация refresh токена. Токен берется из cookie refreshToken или из тела запроса.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Refresh токен, если нет cookie"
// @Success 200 {object} requestresponse.Response{data=model.TokensPair}
// @Failure 401 {object} requestresponse.ErrorResponse "Токен отсутствует, невалиден, просрочен или уже использован"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	if refreshToken == "" {
		var req requestresponse.RefreshTokenRequest
		if err := decodeOptionalJSON(r, &req); err != nil {
			sendErrorResponse(w, err)
			return
		}
		refreshToken = req.RefreshToken
	}

	tokens, err := h.authenticationService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	setAuthCookies(w, tokens.AccessToken, tokens.RefreshToken, h.accessTTL, h.refreshTTL)
	sendResponse(w, http.StatusOK, tokens, "access token refreshed")
}

// Logout godoc
// @Summary Выход
// @Description Удаляет сохраненный refresh токен и очищает cookie
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.Response
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, err := security.UserFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	if err := h.authenticationService.Logout(r.Context(), user.UUID); err != nil {
		sendErrorResponse(w, err)
		return
	}

	clearAuthCookies(w)
	sendResponse(w, http.StatusOK, struct{}{}, "user logged out")
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description Меняет пароль текущего пользователя. Активная сессия при этом завершается.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.ChangePasswordRequest true "Старый и новый пароль"
// @Success 200 {object} requestresponse.Response
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный старый пароль"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/me/password [put]
func (h *AuthenticationHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, err := security.UserFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		sendErrorResponse(w, err)
		return
	}

	if err := h.authenticationService.ChangePassword(r.Context(), user.UUID, req.OldPassword, req.NewPassword); err != nil {
		sendErrorResponse(w, err)
		return
	}

	clearAuthCookies(w)
	sendResponse(w, http.StatusOK, struct{}{}, "password changed successfully")
}
