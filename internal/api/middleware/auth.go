package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Заголовки идентификации, проставляемые шлюзом
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderUserName = "X-User-Name"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidRole   = "некорректная роль пользователя"
)

type contextKey string

const actorKey contextKey = "actor"

// WithActor кладет пользователя в контекст
func WithActor(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor достает пользователя из контекста
func GetActor(ctx context.Context) (*domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(*domain.Actor)
	return actor, ok && actor != nil
}

// Auth требует заголовки X-User-ID и X-User-Role
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role, err := domain.ParseRole(r.Header.Get(HeaderUserRole))
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		actor := &domain.Actor{
			ID:   userID,
			Name: strings.TrimSpace(r.Header.Get(HeaderUserName)),
			Role: role,
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}
