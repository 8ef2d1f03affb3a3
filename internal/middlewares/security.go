package middlewares

import (
	"net/http"
	"strconv"
	"time"
)

// SecurityHeaders sets HSTS, framing, content sniffing and XSS filter headers.
// HSTS is omitted when hstsMaxAge is zero.
func SecurityHeaders(hstsMaxAge time.Duration) func(http.Handler) http.Handler {
	hsts := "max-age=" + strconv.Itoa(int(hstsMaxAge.Seconds())) + "; includeSubDomains; preload"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if hstsMaxAge > 0 {
				h.Set("Strict-Transport-Security", hsts)
			}
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Referrer-Policy", "same-origin")

			next.ServeHTTP(w, r)
		})
	}
}
