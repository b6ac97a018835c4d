package middleware

import (
	"net/http"

	"museum-chat/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKey compares X-Admin-Key with a bcrypt hash. An empty hash disables
// the admin routes altogether.
func AdminKey(hash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hash == "" {
				utils.ResponseForbidden(w, "Admin access is disabled")
				return
			}

			key := r.Header.Get(adminKeyHeader)
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing admin key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
				logger.Warn("Invalid admin key",
					zap.String("ip", ClientIP(r)),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
