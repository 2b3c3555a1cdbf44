package middleware

import (
	"crypto/subtle"
	"net/http"

	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	// CallbackSecretHeader authenticates payment provider callbacks.
	CallbackSecretHeader = "X-Callback-Secret"
	// AdminTokenHeader authenticates admin routes.
	AdminTokenHeader = "X-Admin-Token"
)

// RequireSecret rejects requests whose header does not carry secret. With an empty
// secret the routes behind it are disabled.
func RequireSecret(header, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				utils.ResponseForbidden(w, "Endpoint disabled")
				return
			}

			got := r.Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				logger.Warn("Rejected request with bad shared secret",
					zap.String("header", header),
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseUnauthorized(w, "Invalid "+header+" header")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
