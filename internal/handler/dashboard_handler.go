package handler

import (
	"content-hub-api/internal/ports"
	"content-hub-api/internal/util"
	"context"
	"log"
	"net/http"
	"time"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ChannelStats godoc
// @Summary Статистика канала
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.Response{data=model.ChannelStats}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.ChannelStats(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, stats, "channel stats fetched successfully")
}

// ChannelVideos godoc
// @Summary Видео канала
// @Description Включая неопубликованные
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param cursor query string false "Курсор следующей страницы"
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Success 200 {object} requestresponse.Response{data=requestresponse.ListResponse}
// @Router /api/v1/dashboard/videos [get]
func (h *DashboardHandler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	page, err := h.dashboardService.ChannelVideos(r.Context(), cursor, limit)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendResponse(w, http.StatusOK, page, "channel videos fetched successfully")
}

type HealthcheckHandler struct {
	dependencies map[string]ports.Pinger
}

func NewHealthcheckHandler(dependencies map[string]ports.Pinger) *HealthcheckHandler {
	return &HealthcheckHandler{dependencies: dependencies}
}

// Healthcheck godoc
// @Summary Проверка доступности
// @Description Пингует Postgres и Redis
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} requestresponse.Response
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/healthcheck [get]
func (h *HealthcheckHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.dependencies))
	for name, dependency := range h.dependencies {
		if err := dependency.PingContext(ctx); err != nil {
			log.Printf("[Healthcheck] %s недоступен: %v", name, err)
			sendErrorResponse(w, util.Internal(name+" is unavailable", err))
			return
		}
		status[name] = "ok"
	}

	sendResponse(w, http.StatusOK, status, "OK")
}
