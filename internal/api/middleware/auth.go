package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	userRepo "github.com/m04kA/TennisCourtBooking/internal/infra/storage/user"
	"github.com/m04kA/TennisCourtBooking/pkg/tokens"
)

const (
	msgMissingToken = "Not authenticated"
	msgInvalidToken = "Invalid token"
	msgTokenExpired = "Token expired"
	msgStaffOnly    = "Staff access required"
)

// Auth проверяет Bearer токен и загружает пользователя из хранилища.
// Пользователь перечитывается на каждый запрос, поэтому изменения тарифов применяются сразу.
func Auth(parser TokenParser, users UserLoader, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				if errors.Is(err, tokens.ErrTokenExpired) {
					handlers.RespondUnauthorized(w, msgTokenExpired)
					return
				}
				logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					logger.Warn("%s %s - token for unknown user_id=%s", r.Method, r.URL.Path, claims.UserID)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("%s %s - failed to load user_id=%s: %v", r.Method, r.URL.Path, claims.UserID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireStaff пропускает только сотрудников. Должен стоять после Auth.
func RequireStaff(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if !user.IsStaff {
				logger.Warn("%s %s - staff access denied: user_id=%s", r.Method, r.URL.Path, user.ID)
				handlers.RespondForbidden(w, msgStaffOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
