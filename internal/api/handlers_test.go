package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/discipline/internal/alarm"
	"github.com/limbo/discipline/internal/api"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/internal/prompt"
	"github.com/limbo/discipline/internal/service"
	"github.com/limbo/discipline/internal/service/mocks"
	"github.com/limbo/discipline/pkg/entity"
	jwtservice "github.com/limbo/discipline/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type servicesMock struct {
	habits *mocks.MockHabitsServiceI
	alarms *mocks.MockAlarmServiceI
	lock   *mocks.MockLockServiceI
}

func newServer(t *testing.T, withLock bool) (*api.Server, servicesMock) {
	ctrl := gomock.NewController(t)
	m := servicesMock{
		habits: mocks.NewMockHabitsServiceI(ctrl),
		alarms: mocks.NewMockAlarmServiceI(ctrl),
		lock:   mocks.NewMockLockServiceI(ctrl),
	}
	list := &api.ServicesList{
		HabitsService: m.habits,
		AlarmService:  m.alarms,
		JwtService:    jwtservice.New("test_secret"),
	}
	if withLock {
		list.LockService = m.lock
	}
	return api.New(list), m
}

func do(serv *api.Server, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := sonic.ConfigDefault.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, req)
	return rr
}

var (
	habitID   = uuid.New()
	testHabit = &entity.Habit{
		ID:           habitID,
		Name:         "Run",
		ReminderTime: entity.TimeOfDay{Hour: 7},
		Days:         entity.NewWeekdays(time.Monday, time.Wednesday),
		Vibration:    true,
		Snooze:       true,
	}
)

func TestCreateHabit(t *testing.T) {
	body := api.HabitBody{Name: "Run", ReminderTime: "07:00", Days: []string{"mon", "wed"}}
	t.Run("created", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().CreateHabit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *service.HabitRequest) (*entity.Habit, error) {
				assert.True(t, req.Vibration)
				assert.True(t, req.Snooze)
				assert.Equal(t, []string{"mon", "wed"}, req.Days)
				return testHabit, nil
			})
		rr := do(serv, http.MethodPost, "/api/v1/habits", body, nil)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

		var resp map[string]any
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotContains(t, resp, "alarm_warning")
		habit := resp["habit"].(map[string]any)
		assert.Equal(t, "07:00", habit["reminder_time"])
		assert.Equal(t, []any{"mon", "wed"}, habit["days"])
	})
	t.Run("created without alarm", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().CreateHabit(gomock.Any(), gomock.Any()).
			Return(testHabit, errors.Join(errorvalues.ErrAlarmNotScheduled, errors.New("platform gone")))
		rr := do(serv, http.MethodPost, "/api/v1/habits", body, nil)
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp api.HabitResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, errorvalues.ErrAlarmNotScheduled.Error(), resp.AlarmWarning)
		assert.Equal(t, habitID, resp.Habit.ID)
	})
	t.Run("flags turned off", func(t *testing.T) {
		serv, m := newServer(t, false)
		off := false
		m.habits.EXPECT().CreateHabit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *service.HabitRequest) (*entity.Habit, error) {
				assert.False(t, req.Vibration)
				assert.False(t, req.Snooze)
				return testHabit, nil
			})
		rr := do(serv, http.MethodPost, "/api/v1/habits", api.HabitBody{Name: "Run", ReminderTime: "07:00", Vibration: &off, Snooze: &off}, nil)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("error codes", func(t *testing.T) {
		testCases := []struct {
			Desc     string
			Err      error
			Expected int
		}{
			{Desc: "validation", Err: errors.Join(errorvalues.ErrValidation, errors.New("bad time")), Expected: http.StatusBadRequest},
			{Desc: "duplicate", Err: errorvalues.ErrDuplicateName, Expected: http.StatusConflict},
			{Desc: "storage", Err: errors.Join(errors.New("habits repository error"), errorvalues.ErrStorageUnavailable), Expected: http.StatusServiceUnavailable},
			{Desc: "unknown", Err: errors.New("boom"), Expected: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			t.Run(tc.Desc, func(t *testing.T) {
				serv, m := newServer(t, false)
				m.habits.EXPECT().CreateHabit(gomock.Any(), gomock.Any()).Return(nil, tc.Err)
				rr := do(serv, http.MethodPost, "/api/v1/habits", body, nil)
				assert.Equal(t, tc.Expected, rr.Code)
			})
		}
	})
	t.Run("invalid body", func(t *testing.T) {
		serv, _ := newServer(t, false)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/habits", bytes.NewReader([]byte("{")))
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHabitRoutes(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().GetHabit(gomock.Any(), habitID).Return(&service.HabitOverview{Habit: testHabit, Upcoming: true}, nil)
		rr := do(serv, http.MethodGet, "/api/v1/habits/"+habitID.String(), nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["upcoming"])
		assert.Equal(t, "Run", resp["name"])
	})
	t.Run("invalid id", func(t *testing.T) {
		serv, _ := newServer(t, false)
		rr := do(serv, http.MethodGet, "/api/v1/habits/not-a-uuid", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("update missing habit", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().UpdateHabit(gomock.Any(), habitID, gomock.Any()).Return(nil, errorvalues.ErrHabitNotFound)
		rr := do(serv, http.MethodPut, "/api/v1/habits/"+habitID.String(), api.HabitBody{Name: "Run", ReminderTime: "07:00"}, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("update", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().UpdateHabit(gomock.Any(), habitID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, req *service.HabitRequest) (*entity.Habit, error) {
				assert.Equal(t, []string{}, req.Days)
				return testHabit, nil
			})
		rr := do(serv, http.MethodPut, "/api/v1/habits/"+habitID.String(), api.HabitBody{Name: "Run", ReminderTime: "07:00"}, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("delete", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().DeleteHabit(gomock.Any(), habitID).Return(nil)
		rr := do(serv, http.MethodDelete, "/api/v1/habits/"+habitID.String(), nil, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("list", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().ListHabits(gomock.Any()).Return([]*service.HabitOverview{{Habit: testHabit}}, nil)
		rr := do(serv, http.MethodGet, "/api/v1/habits", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string][]map[string]any
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp["habits"], 1)
	})
	t.Run("complete defaults to true", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().CompleteHabit(gomock.Any(), habitID, true).Return(nil)
		rr := do(serv, http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("uncomplete", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().CompleteHabit(gomock.Any(), habitID, false).Return(nil)
		rr := do(serv, http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", api.CompleteRequest{Completed: false}, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("dismiss for today", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().DismissForToday(gomock.Any(), habitID).Return(nil)
		rr := do(serv, http.MethodPost, "/api/v1/habits/"+habitID.String()+"/dismiss", nil, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("habit history", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().GetHabitHistory(gomock.Any(), habitID).Return([]entity.HistoryRecord{
			{ID: uuid.New(), HabitID: habitID, Date: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), Status: entity.StatusMissed},
		}, nil)
		rr := do(serv, http.MethodGet, "/api/v1/habits/"+habitID.String()+"/history", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.HistoryResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Records, 1)
		assert.Equal(t, entity.StatusMissed, resp.Records[0].Status)
	})
}

func TestHistoryRoutes(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		serv, m := newServer(t, false)
		from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
		m.habits.EXPECT().GetHistory(gomock.Any(), from, to).Return([]entity.HistoryRecord{}, nil)
		rr := do(serv, http.MethodGet, "/api/v1/history?from=2024-03-01&to=2024-03-31", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("bad range", func(t *testing.T) {
		serv, _ := newServer(t, false)
		for _, query := range []string{"", "?from=2024-03-31&to=2024-03-01", "?from=03/01/2024&to=2024-03-31"} {
			rr := do(serv, http.MethodGet, "/api/v1/history"+query, nil, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code, query)
		}
	})
	t.Run("clear", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.habits.EXPECT().ClearHistory(gomock.Any()).Return(nil)
		rr := do(serv, http.MethodDelete, "/api/v1/history", nil, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestPromptRoutes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.alarms.EXPECT().ActivePrompts().Return([]prompt.Prompt{{
			Payload:   alarm.Payload{HabitID: habitID, HabitName: "Run", Snooze: true},
			ShownAt:   time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC),
			CanSnooze: true,
		}})
		rr := do(serv, http.MethodGet, "/api/v1/prompts", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.PromptsResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Prompts, 1)
		assert.True(t, resp.Prompts[0].CanSnooze)
	})
	t.Run("snooze", func(t *testing.T) {
		serv, m := newServer(t, false)
		until := time.Date(2024, time.March, 4, 7, 5, 0, 0, time.UTC)
		m.alarms.EXPECT().Snooze(gomock.Any(), habitID).Return(until, nil)
		rr := do(serv, http.MethodPost, "/api/v1/prompts/"+habitID.String()+"/snooze", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]string
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, until.Format(time.RFC3339), resp["snoozed_until"])
	})
	t.Run("snooze of deleted habit", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.alarms.EXPECT().Snooze(gomock.Any(), habitID).Return(time.Time{}, nil)
		rr := do(serv, http.MethodPost, "/api/v1/prompts/"+habitID.String()+"/snooze", nil, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("snooze not allowed", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.alarms.EXPECT().Snooze(gomock.Any(), habitID).Return(time.Time{}, errorvalues.ErrSnoozeNotAllowed)
		rr := do(serv, http.MethodPost, "/api/v1/prompts/"+habitID.String()+"/snooze", nil, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("dismiss without prompt", func(t *testing.T) {
		serv, m := newServer(t, false)
		m.alarms.EXPECT().Dismiss(gomock.Any(), habitID).Return(errorvalues.ErrPromptNotFound)
		rr := do(serv, http.MethodPost, "/api/v1/prompts/"+habitID.String()+"/dismiss", nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAppLock(t *testing.T) {
	t.Run("disabled lock", func(t *testing.T) {
		serv, m := newServer(t, true)
		m.lock.EXPECT().Enabled().Return(false).AnyTimes()
		rr := do(serv, http.MethodPost, "/api/v1/unlock", api.UnlockRequest{Pin: "1234"}, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		m.habits.EXPECT().ListHabits(gomock.Any()).Return(nil, nil)
		rr = do(serv, http.MethodGet, "/api/v1/habits", nil, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("locked", func(t *testing.T) {
		serv, m := newServer(t, true)
		m.lock.EXPECT().Enabled().Return(true).AnyTimes()

		rr := do(serv, http.MethodGet, "/api/v1/habits", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		rr = do(serv, http.MethodGet, "/api/v1/habits", nil, http.Header{"Authorization": {"Bearer not.a.token"}})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		rr = do(serv, http.MethodGet, "/api/v1/habits", nil, http.Header{"Authorization": {"Basic abc"}})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		m.lock.EXPECT().Unlock("0000").Return(errorvalues.ErrWrongPin)
		rr = do(serv, http.MethodPost, "/api/v1/unlock", api.UnlockRequest{Pin: "0000", Device: "phone"}, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		m.lock.EXPECT().Unlock("1234").Return(nil)
		rr = do(serv, http.MethodPost, "/api/v1/unlock", api.UnlockRequest{Pin: "1234", Device: "phone"}, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]string
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotEmpty(t, resp["token"])

		m.habits.EXPECT().ListHabits(gomock.Any()).Return([]*service.HabitOverview{}, nil)
		rr = do(serv, http.MethodGet, "/api/v1/habits", nil, http.Header{"Authorization": {"Bearer " + resp["token"]}})
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("token from another secret", func(t *testing.T) {
		serv, m := newServer(t, true)
		m.lock.EXPECT().Enabled().Return(true).AnyTimes()
		token, err := jwtservice.New("other_secret").GenerateToken("phone")
		require.NoError(t, err)
		rr := do(serv, http.MethodGet, "/api/v1/habits", nil, http.Header{"Authorization": {"Bearer " + token}})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestID(t *testing.T) {
	serv, _ := newServer(t, false)

	rr := do(serv, http.MethodGet, "/api/v1/unknown", nil, http.Header{"X-Request-Id": {"client-42"}})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "client-42", rr.Header().Get("X-Request-ID"))

	first := do(serv, http.MethodGet, "/api/v1/unknown", nil, nil).Header().Get("X-Request-ID")
	second := do(serv, http.MethodGet, "/api/v1/unknown", nil, nil).Header().Get("X-Request-ID")
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
