package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/prompt"
	"github.com/limbo/discipline/internal/service"
	"github.com/limbo/discipline/pkg/entity"
	"github.com/limbo/discipline/pkg/httputil"
)

const dateLayout = "2006-01-02"

type UnlockRequest struct {
	Pin    string `json:"pin"`
	Device string `json:"device"`
}

// HabitBody is the body of create and update requests. Missing vibration and
// snooze flags default to true.
type HabitBody struct {
	Name         string   `json:"name"`
	ReminderTime string   `json:"reminder_time"`
	Days         []string `json:"days"`
	Vibration    *bool    `json:"vibration,omitempty"`
	Snooze       *bool    `json:"snooze,omitempty"`
}

func (b *HabitBody) toRequest() *service.HabitRequest {
	req := &service.HabitRequest{
		Name:         b.Name,
		ReminderTime: b.ReminderTime,
		Days:         b.Days,
		Vibration:    true,
		Snooze:       true,
	}
	if b.Vibration != nil {
		req.Vibration = *b.Vibration
	}
	if b.Snooze != nil {
		req.Snooze = *b.Snooze
	}
	if req.Days == nil {
		req.Days = []string{}
	}
	return req
}

type CompleteRequest struct {
	Completed bool `json:"completed"`
}

type HabitResponse struct {
	Habit        *entity.Habit `json:"habit"`
	AlarmWarning string        `json:"alarm_warning,omitempty"`
}

type HabitsListResponse struct {
	Habits []*service.HabitOverview `json:"habits"`
}

type HistoryResponse struct {
	Records []entity.HistoryRecord `json:"records"`
}

type PromptsResponse struct {
	Prompts []prompt.Prompt `json:"prompts"`
}

func (s *Server) Unlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if s.lockService == nil || !s.lockService.Enabled() {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "app lock is disabled", nil)
		return
	}
	var req UnlockRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("unlock error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	err = s.lockService.Unlock(req.Pin)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongPin):
			logger.Error("unlock error: wrong pin")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "wrong pin", nil)
		case errors.Is(err, errorvalues.ErrLockDisabled):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "app lock is disabled", nil)
		default:
			logger.Error("unlock error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during unlock", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(req.Device)
	if err != nil {
		logger.Error("unlock error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"token": token,
	})
	logger.Info("app unlocked", slog.String("device", req.Device))
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var body HabitBody
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, body.toRequest())
	if err != nil && habit == nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	resp := HabitResponse{Habit: habit}
	if err != nil {
		logger.Warn("habit created without alarm", slog.String("error", err.Error()))
		resp.AlarmWarning = errorvalues.ErrAlarmNotScheduled.Error()
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.ListHabits(ctx)
	if err != nil {
		writeServiceError(w, logger, "list habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HabitsListResponse{Habits: habits})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	var body HabitBody
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, id, body.toRequest())
	if err != nil && habit == nil {
		writeServiceError(w, logger, "update habit", err)
		return
	}
	resp := HabitResponse{Habit: habit}
	if err != nil {
		logger.Warn("habit updated without alarm", slog.String("error", err.Error()))
		resp.AlarmWarning = errorvalues.ErrAlarmNotScheduled.Error()
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("habit updated", slog.String("habit_id", id.String()))
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.habitsService.DeleteHabit(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "habit deletion", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	req := CompleteRequest{Completed: true}
	defer r.Body.Close()
	if r.ContentLength != 0 {
		err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error("complete habit error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.habitsService.CompleteHabit(ctx, id, req.Completed)
	if err != nil {
		writeServiceError(w, logger, "complete habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"habit_id":  id.String(),
		"completed": req.Completed,
	})
}

func (s *Server) DismissHabitForToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.habitsService.DismissForToday(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "dismiss habit", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit dismissed for today", slog.String("habit_id", id.String()))
}

func (s *Server) GetHabitHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	records, err := s.habitsService.GetHabitHistory(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get habit history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HistoryResponse{Records: records})
}

// GetHistory expects both from and to as YYYY-MM-DD.
func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	from, errFrom := time.Parse(dateLayout, r.URL.Query().Get("from"))
	to, errTo := time.Parse(dateLayout, r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil || to.Before(from) {
		logger.Error("get history error: invalid date range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range, expected from<=to as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	records, err := s.habitsService.GetHistory(ctx, from, to)
	if err != nil {
		writeServiceError(w, logger, "get history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HistoryResponse{Records: records})
}

func (s *Server) ClearHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.habitsService.ClearHistory(ctx); err != nil {
		writeServiceError(w, logger, "clear history", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("history cleared")
}

func (s *Server) GetPrompts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, PromptsResponse{Prompts: s.alarmService.ActivePrompts()})
}

func (s *Server) SnoozePrompt(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	at, err := s.alarmService.Snooze(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "snooze", err)
		return
	}
	if at.IsZero() {
		// habit was deleted meanwhile
		httputil.WriteNoContent(w)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"habit_id":      id.String(),
		"snoozed_until": at,
	})
	logger.Info("alarm snoozed", slog.String("habit_id", id.String()), slog.Time("until", at))
}

func (s *Server) DismissPrompt(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := habitIDFromPath(w, r, logger)
	if !ok {
		return
	}
	if err := s.alarmService.Dismiss(r.Context(), id); err != nil {
		writeServiceError(w, logger, "dismiss prompt", err)
		return
	}
	httputil.WriteNoContent(w)
}

func habitIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service sentinels to response codes.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit fields", err)
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		logger.Error(op + " error: unexist habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrPromptNotFound):
		logger.Error(op + " error: no active prompt")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no active prompt for habit", nil)
	case errors.Is(err, errorvalues.ErrDuplicateName):
		logger.Error(op + " error: duplicate name")
		httputil.WriteErrorResponse(w, http.StatusConflict, "habit with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrSnoozeNotAllowed):
		logger.Error(op + " error: snooze not allowed")
		httputil.WriteErrorResponse(w, http.StatusConflict, "snooze isn't allowed for this alarm", nil)
	case errors.Is(err, errorvalues.ErrStorageUnavailable):
		logger.Error(op+" error: storage unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
