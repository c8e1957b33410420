package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/httputil"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	deviceKey
)

// RequestLoggerMiddleware runs after middleware.RequestID. It echoes the
// request id in X-Request-ID and puts a logger tagged with it into the
// request context.
func (s *Server) RequestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("from", r.RemoteAddr),
		)
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
			logger = logger.With(slog.String("request_id", reqID))
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), logger)))
		logger.Debug("request served",
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// AuthMiddleware lets requests through only with a valid session token while
// the app lock is enabled.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.lockService == nil || !s.lockService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: error parsing token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			default:
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
				return
			}
		}
		// Assuring if token is alive
		now := time.Now()
		if tokenClaims.ExpiresAt == nil || tokenClaims.ExpiresAt.Time.Before(now) ||
			(tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now)) {
			logger.Error("tried to auth with expired or not ready token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		ctx := context.WithValue(r.Context(), deviceKey, tokenClaims.Device)
		ctx = withLogger(ctx, logger.With(slog.String("device", tokenClaims.Device)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

// GetDeviceFromContext returns the device named in the session token.
func GetDeviceFromContext(r *http.Request) (string, bool) {
	device, ok := r.Context().Value(deviceKey).(string)
	return device, ok
}
