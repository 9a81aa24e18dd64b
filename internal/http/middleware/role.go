package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/siteguard/api/internal/policy"
	"github.com/siteguard/api/internal/session"
)

type contextKey string

// ContextKeyRole guarda o perfil resolvido para a requisição.
const ContextKeyRole contextKey = "role"

// Role resolve o perfil da requisição e injeta no contexto: o header
// X-Role tem precedência (contexto explícito por chamada), com fallback
// para o slot durável da sessão.
func Role(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := session.RoleNone
			if header := r.Header.Get("X-Role"); header != "" {
				parsed, ok := session.ParseRole(header)
				if !ok {
					writeError(w, http.StatusBadRequest, "VALIDATION", "perfil desconhecido")
					return
				}
				role = parsed
			} else {
				role = store.Get(r.Context())
			}

			ctx := context.WithValue(r.Context(), ContextKeyRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRole recupera o perfil do contexto.
func GetRole(ctx context.Context) session.Role {
	val, _ := ctx.Value(ContextKeyRole).(session.Role)
	return val
}

// RequireRole exige perfil selecionado.
func RequireRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetRole(r.Context()).IsSet() {
			writeError(w, http.StatusUnauthorized, "AUTH", "nenhum perfil selecionado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAction exige que a política permita a ação para o perfil atual.
func RequireAction(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !policy.Allows(GetRole(r.Context()), action) {
				writeError(w, http.StatusForbidden, "FORBIDDEN", policy.ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": nil,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
