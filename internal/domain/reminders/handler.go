package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-dose-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc))
		rr.Get("/pending", listPendingHandler(svc))
		rr.Get("/overdue", listOverdueHandler(svc))
		rr.Get("/taken", listTakenHandler(svc))

		rr.Get("/{reminderID}", getReminderHandler(svc))
		rr.Post("/{reminderID}/take", markTakenHandler(svc))
		rr.Post("/{reminderID}/skip", markSkippedHandler(svc))
	})

	// Reminders de un schedule concreto ("hoy" se arma con from/to arriba).
	r.Get("/schedules/{scheduleID}/reminders", listByScheduleHandler(svc))
}

// reminderResponse representa una dosis con su estado derivado al momento de la consulta.
type reminderResponse struct {
	ID            int64      `json:"id"`
	ScheduleID    int64      `json:"schedule_id"`
	MedicineID    int64      `json:"medicine_id"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	TakenAt       *time.Time `json:"taken_at,omitempty"`
	IsTaken       bool       `json:"is_taken"`
	IsSkipped     bool       `json:"is_skipped"`
	Status        Status     `json:"status" enums:"pending,taken,skipped,overdue"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toReminderResponse(d DoseReminder, now time.Time) reminderResponse {
	return reminderResponse{
		ID:            d.ID,
		ScheduleID:    d.ScheduleID,
		MedicineID:    d.MedicineID,
		ScheduledTime: d.ScheduledTime,
		TakenAt:       d.TakenAt,
		IsTaken:       d.IsTaken,
		IsSkipped:     d.IsSkipped,
		Status:        d.Status(now),
		CreatedAt:     d.CreatedAt,
	}
}

func toReminderResponses(ds []DoseReminder) []reminderResponse {
	now := time.Now()
	out := make([]reminderResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toReminderResponse(d, now))
	}
	return out
}

// listRemindersHandler godoc
// @Summary Listar dose reminders
// @Description Sin filtros devuelve todos. Con `from`/`to` (RFC3339) filtra por intervalo semiabierto: from <= scheduled_time < to.
// @Tags reminders
// @Produce json
// @Param from query string false "Fecha/hora mínima scheduled_time, inclusiva (RFC3339)"
// @Param to query string false "Fecha/hora máxima scheduled_time, exclusiva (RFC3339)"
// @Success 200 {array} reminderResponse
// @Failure 400 {string} string "from/to inválidos"
// @Failure 500 {string} string "internal error"
// @Router /reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromRaw := strings.TrimSpace(r.URL.Query().Get("from"))
		toRaw := strings.TrimSpace(r.URL.Query().Get("to"))

		var (
			list []DoseReminder
			err  error
		)

		if fromRaw != "" || toRaw != "" {
			if fromRaw == "" || toRaw == "" {
				http.Error(w, "from and to must come together", http.StatusBadRequest)
				return
			}
			from, errF := time.Parse(time.RFC3339, fromRaw)
			to, errT := time.Parse(time.RFC3339, toRaw)
			if errF != nil || errT != nil {
				http.Error(w, "from/to must be RFC3339", http.StatusBadRequest)
				return
			}
			list, err = svc.ListByDateRange(r.Context(), from, to)
		} else {
			list, err = svc.ListAll(r.Context())
		}

		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponses(list))
	}
}

// listPendingHandler godoc
// @Summary Listar dosis pendientes
// @Description Dosis ni tomadas ni saltadas, vencidas o no, por scheduled_time ascendente.
// @Tags reminders
// @Produce json
// @Success 200 {array} reminderResponse
// @Failure 500 {string} string "internal error"
// @Router /reminders/pending [get]
func listPendingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListPending(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponses(list))
	}
}

// listOverdueHandler godoc
// @Summary Listar dosis vencidas
// @Description Subconjunto de pending con scheduled_time ya pasado, evaluado contra el reloj en el momento de la consulta.
// @Tags reminders
// @Produce json
// @Success 200 {array} reminderResponse
// @Failure 500 {string} string "internal error"
// @Router /reminders/overdue [get]
func listOverdueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListOverdue(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponses(list))
	}
}

// listTakenHandler godoc
// @Summary Historial de dosis tomadas
// @Description Dosis con is_taken = true, ordenadas por taken_at ascendente.
// @Tags reminders
// @Produce json
// @Success 200 {array} reminderResponse
// @Failure 500 {string} string "internal error"
// @Router /reminders/taken [get]
func listTakenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListTaken(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponses(list))
	}
}

// getReminderHandler godoc
// @Summary Obtener un dose reminder
// @Tags reminders
// @Produce json
// @Param reminderID path int true "ID del reminder"
// @Success 200 {object} reminderResponse
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [get]
func getReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(chi.URLParam(r, "reminderID"))
		if err != nil {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(d, time.Now()))
	}
}

// markTakenHandler godoc
// @Summary Marcar dosis como tomada
// @Description Transición a taken: resetea is_skipped y actualiza taken_at al instante actual.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param reminderID path int true "ID del reminder"
// @Success 200 {object} reminderResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/take [post]
func markTakenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := parseID(chi.URLParam(r, "reminderID"))
		if err != nil {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		d, err := svc.MarkTaken(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(d, time.Now()))
	}
}

// markSkippedHandler godoc
// @Summary Marcar dosis como saltada
// @Description Transición a skipped: resetea is_taken pero conserva taken_at histórico.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param reminderID path int true "ID del reminder"
// @Success 200 {object} reminderResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/skip [post]
func markSkippedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := parseID(chi.URLParam(r, "reminderID"))
		if err != nil {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		d, err := svc.MarkSkipped(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reminder not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(d, time.Now()))
	}
}

// listByScheduleHandler godoc
// @Summary Listar reminders de un schedule
// @Tags reminders
// @Produce json
// @Param scheduleID path int true "ID del schedule"
// @Success 200 {array} reminderResponse
// @Failure 500 {string} string "internal error"
// @Router /schedules/{scheduleID}/reminders [get]
func listByScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduleID, err := parseID(chi.URLParam(r, "scheduleID"))
		if err != nil {
			writeJSON(w, http.StatusOK, []reminderResponse{})
			return
		}

		list, err := svc.ListBySchedule(r.Context(), scheduleID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponses(list))
	}
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
