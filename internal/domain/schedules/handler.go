package schedules

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-dose-tracker/internal/domain/medicines"
	"med-dose-tracker/internal/domain/reminders"
	"med-dose-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, medsSvc *medicines.Service) {
	r.Route("/medicines/{medicineID}/schedules", func(sr chi.Router) {
		sr.Post("/", createScheduleHandler(svc, medsSvc))
		sr.Get("/", listSchedulesHandler(svc, medsSvc))
	})

	r.Route("/schedules/{scheduleID}", func(sr chi.Router) {
		sr.Get("/", getScheduleHandler(svc))
		sr.Delete("/", deleteScheduleHandler(svc))
		sr.Post("/deactivate", deactivateScheduleHandler(svc))
	})
}

type createScheduleRequest struct {
	IntervalHours int    `json:"interval_hours"`
	DurationDays  int    `json:"duration_days"`
	StartTime     string `json:"start_time"` // "HH:MM" o RFC3339
	Notes         string `json:"notes"`
}

type scheduleResponse struct {
	ID            int64     `json:"id"`
	MedicineID    int64     `json:"medicine_id"`
	IntervalHours int       `json:"interval_hours"`
	DurationDays  int       `json:"duration_days"`
	StartTime     string    `json:"start_time"`
	Notes         string    `json:"notes"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// generatedReminderResponse es la vista mínima de cada dosis recién generada.
type generatedReminderResponse struct {
	ID            int64     `json:"id"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

type createScheduleResponse struct {
	Schedule  scheduleResponse            `json:"schedule"`
	Reminders []generatedReminderResponse `json:"reminders"`
}

func toScheduleResponse(s Schedule) scheduleResponse {
	return scheduleResponse{
		ID:            s.ID,
		MedicineID:    s.MedicineID,
		IntervalHours: s.IntervalHours,
		DurationDays:  s.DurationDays,
		StartTime:     s.StartTime,
		Notes:         s.Notes,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

// createScheduleHandler godoc
// @Summary Crear schedule de dosificación
// @Description Crea la recurrencia para un medicamento y materializa todos sus dose reminders en una sola operación (todo o nada). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags schedules
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param medicineID path int true "ID del medicamento"
// @Param payload body createScheduleRequest true "interval_hours en [1,24], duration_days >= 1, start_time HH:MM o RFC3339"
// @Success 201 {object} createScheduleResponse
// @Failure 400 {string} string "invalid json / schedule inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID}/schedules [post]
func createScheduleHandler(svc *Service, medsSvc *medicines.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		medicineID, err := parseID(chi.URLParam(r, "medicineID"))
		if err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}
		if _, err := medsSvc.GetByID(r.Context(), medicineID); err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}

		var req createScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sched, ds, err := svc.Create(r.Context(), CreateInput{
			MedicineID:    medicineID,
			IntervalHours: req.IntervalHours,
			DurationDays:  req.DurationDays,
			StartTime:     req.StartTime,
			Notes:         req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidSchedule) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, createScheduleResponse{
			Schedule:  toScheduleResponse(sched),
			Reminders: toGeneratedResponses(ds),
		})
	}
}

// listSchedulesHandler godoc
// @Summary Listar schedules de un medicamento
// @Tags schedules
// @Produce json
// @Param medicineID path int true "ID del medicamento"
// @Success 200 {array} scheduleResponse
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID}/schedules [get]
func listSchedulesHandler(svc *Service, medsSvc *medicines.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medicineID, err := parseID(chi.URLParam(r, "medicineID"))
		if err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}
		if _, err := medsSvc.GetByID(r.Context(), medicineID); err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}

		list, err := svc.ListByMedicine(r.Context(), medicineID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]scheduleResponse, 0, len(list))
		for _, s := range list {
			out = append(out, toScheduleResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getScheduleHandler godoc
// @Summary Obtener schedule
// @Tags schedules
// @Produce json
// @Param scheduleID path int true "ID del schedule"
// @Success 200 {object} scheduleResponse
// @Failure 404 {string} string "schedule not found"
// @Router /schedules/{scheduleID} [get]
func getScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(chi.URLParam(r, "scheduleID"))
		if err != nil {
			http.Error(w, "schedule not found", http.StatusNotFound)
			return
		}

		s, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "schedule not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toScheduleResponse(s))
	}
}

// deleteScheduleHandler godoc
// @Summary Borrar schedule
// @Description Borra el schedule y en cascada todos sus dose reminders.
// @Tags schedules
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param scheduleID path int true "ID del schedule"
// @Success 204 {string} string ""
// @Failure 401 {string} string "unauthorized"
// @Router /schedules/{scheduleID} [delete]
func deleteScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := parseID(chi.URLParam(r, "scheduleID"))
		if err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deactivateScheduleHandler godoc
// @Summary Desactivar schedule
// @Description Apaga el schedule sin borrar su histórico ni sus reminders ya generados.
// @Tags schedules
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param scheduleID path int true "ID del schedule"
// @Success 200 {object} scheduleResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "schedule not found"
// @Router /schedules/{scheduleID}/deactivate [post]
func deactivateScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := parseID(chi.URLParam(r, "scheduleID"))
		if err != nil {
			http.Error(w, "schedule not found", http.StatusNotFound)
			return
		}

		s, err := svc.Deactivate(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "schedule not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toScheduleResponse(s))
	}
}

func toGeneratedResponses(ds []reminders.DoseReminder) []generatedReminderResponse {
	out := make([]generatedReminderResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, generatedReminderResponse{ID: d.ID, ScheduledTime: d.ScheduledTime})
	}
	return out
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
