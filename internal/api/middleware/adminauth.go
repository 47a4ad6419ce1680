package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/adminauth"
)

// HeaderAdminCode заголовок с кодом доступа к админ-панели
const HeaderAdminCode = "X-Admin-Code"

const (
	msgMissingAdminCode = "missing admin access code"
	msgInvalidAdminCode = "invalid admin access code"
)

// AuthService интерфейс сервиса авторизации
type AuthService interface {
	Verify(ctx context.Context, code string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет код доступа в заголовке X-Admin-Code.
// Все админские маршруты закрыты этим middleware.
func AdminAuth(auth AuthService, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.Header.Get(HeaderAdminCode)
			if code == "" {
				log.Warn("AdminAuth: missing %s header for %s %s", HeaderAdminCode, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingAdminCode)
				return
			}

			if err := auth.Verify(r.Context(), code); err != nil {
				if errors.Is(err, adminauth.ErrAccessDenied) {
					log.Warn("AdminAuth: invalid code for %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidAdminCode)
					return
				}
				log.Error("AdminAuth: verification failed: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
