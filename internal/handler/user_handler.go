package handler

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/util"
	"context"
	"net/http"
)

const maxMultipartMemory = 10 << 20

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUser godoc
// @Summary Регистрация
// @Description Создает пользователя. username и email приводятся к нижнему регистру.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Данные пользователя"
// @Success 201 {object} requestresponse.Response{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "username или email заняты"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusCreated, user, "user registered successfully")
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.Response{data=model.User}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "access токен просрочен"
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, user, "current user fetched successfully")
}

// UpdateAccount godoc
// @Summary Обновление профиля
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.UpdateAccountRequest true "Имя и email"
// @Success 200 {object} requestresponse.Response{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/me [patch]
func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		sendErrorResponse(w, err)
		return
	}

	user, err := h.userService.UpdateAccount(r.Context(), &req)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, user, "account details updated successfully")
}

// UpdateAvatar godoc
// @Summary Загрузка аватара
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param avatar formData file true "Изображение"
// @Success 200 {object} requestresponse.Response{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/me/avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "avatar", h.userService.UpdateAvatar, "avatar updated successfully")
}

// UpdateCoverImage godoc
// @Summary Загрузка обложки канала
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param coverImage formData file true "Изображение"
// @Success 200 {object} requestresponse.Response{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/me/cover [patch]
func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "coverImage", h.userService.UpdateCoverImage, "cover image updated successfully")
}

func (h *UserHandler) uploadImage(
	w http.ResponseWriter,
	r *http.Request,
	field string,
	upload func(ctx context.Context, file *ports.MediaFile) (*model.User, error),
	message string,
) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		sendErrorResponse(w, util.Validation("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		sendErrorResponse(w, util.Validation(field+" file is required"))
		return
	}
	defer file.Close()

	user, err := upload(r.Context(), &ports.MediaFile{
		Body:        file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, user, message)
}
