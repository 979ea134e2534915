package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/apiarm/MRB-BookingService/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// AdminIDHeader заголовок с идентификатором администратора.
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку.
const AdminIDHeader = "X-Admin-ID"

// Auth проверяет наличие X-Admin-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(AdminIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+AdminIDHeader)
			return
		}

		adminID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+AdminIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int64)
	return adminID, ok
}
