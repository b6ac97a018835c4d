package adaptor

import (
	"encoding/json"
	"net/http"

	"museum-chat/internal/dto/request"
	"museum-chat/internal/usecase"
	"museum-chat/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HoursHandler struct {
	service usecase.HoursService
	log     *zap.Logger
}

func NewHoursHandler(service usecase.HoursService, log *zap.Logger) *HoursHandler {
	return &HoursHandler{
		service: service,
		log:     log.With(zap.String("handler", "hours")),
	}
}

// GetOpeningHours handles GET /api/orari
func (h *HoursHandler) GetOpeningHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.GetOpeningHours(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get opening hours")
		return
	}

	utils.ResponseSuccess(w, "success", hours)
}

// UpdateOpeningHour handles PUT /api/admin/orari/{id} (admin only)
func (h *HoursHandler) UpdateOpeningHour(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOpeningHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hour, err := h.service.UpdateOpeningHour(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update opening hour")
		return
	}

	utils.ResponseSuccess(w, "success", hour)
}
