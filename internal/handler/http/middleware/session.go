package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/kintai-app/timeclock-backend-go/internal/handler/http/response"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/session"
)

type contextKey string

// SessionEmployeeIDKey carries the authenticated employee's code once a
// session token has been validated.
const SessionEmployeeIDKey contextKey = "session_employee_id"

// SessionRequired validates the bearer session token against the store,
// binding it to the caller's IP address.
func SessionRequired(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Unauthorized(w, "Session token required")
				return
			}

			sess, ok := sessions.Validate(token, ClientIP(r))
			if !ok {
				response.Unauthorized(w, "Session not found or expired")
				return
			}

			ctx := context.WithValue(r.Context(), SessionEmployeeIDKey, sess.EmployeeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// SessionEmployeeID returns the employee code set by SessionRequired.
func SessionEmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(SessionEmployeeIDKey).(string)
	return id
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// ClientIP resolves the caller's address, preferring the first entry of
// X-Forwarded-For when the service sits behind a proxy.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
