package driver_auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tarekkanon/nightshift-logistics/internal/service/auth"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
)

const bearerPrefix = "Bearer "

type ctxKey struct{}

// Middleware пропускает только запросы с живой сессией водителя.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				writeUnauthorized(w)
				return
			}

			session, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					writeUnauthorized(w)
					return
				}
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("authenticate driver session")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, session.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID из контекста запроса, прошедшего Middleware.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}

func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="driver"`)
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthenticated"}`))
}
