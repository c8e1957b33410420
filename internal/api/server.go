package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/discipline/internal/service"
)

type Server struct {
	mx            *chi.Mux
	mu            sync.Mutex
	srv           *http.Server
	habitsService service.HabitsServiceI
	alarmService  service.AlarmServiceI
	lockService   service.LockServiceI
	jwtService    JWTServiceI
}

type ServicesList struct {
	HabitsService service.HabitsServiceI
	AlarmService  service.AlarmServiceI
	// Optional; without it every route is open
	LockService service.LockServiceI
	JwtService  JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:            chi.NewMux(),
		habitsService: servicesOptions.HabitsService,
		alarmService:  servicesOptions.AlarmService,
		lockService:   servicesOptions.LockService,
		jwtService:    servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.RequestID, s.RequestLoggerMiddleware, middleware.Recoverer)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/unlock", s.Unlock)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)

			r.Get("/habits", s.ListHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/{id}", s.GetHabit)
			r.Put("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/complete", s.CompleteHabit)
			r.Post("/habits/{id}/dismiss", s.DismissHabitForToday)
			r.Get("/habits/{id}/history", s.GetHabitHistory)

			r.Get("/history", s.GetHistory)
			r.Delete("/history", s.ClearHistory)

			r.Get("/prompts", s.GetPrompts)
			r.Post("/prompts/{id}/snooze", s.SnoozePrompt)
			r.Post("/prompts/{id}/dismiss", s.DismissPrompt)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks serving on addr until Shutdown is called.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
