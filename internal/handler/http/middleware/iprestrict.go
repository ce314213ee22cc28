package middleware

import (
	"net"
	"net/http"

	"github.com/kintai-app/timeclock-backend-go/internal/handler/http/response"
)

// IPRestrict limits access to the given addresses. Entries may be single IPs
// ("10.0.0.5") or CIDR ranges ("10.0.0.0/24"). An empty list disables the
// check.
func IPRestrict(allowed []string) func(http.Handler) http.Handler {
	var (
		exact    = map[string]struct{}{}
		networks []*net.IPNet
	)
	for _, entry := range allowed {
		if _, network, err := net.ParseCIDR(entry); err == nil {
			networks = append(networks, network)
			continue
		}
		exact[entry] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if len(exact) == 0 && len(networks) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := ClientIP(r)
			if _, ok := exact[clientIP]; ok {
				next.ServeHTTP(w, r)
				return
			}

			if ip := net.ParseIP(clientIP); ip != nil {
				for _, network := range networks {
					if network.Contains(ip) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			response.Forbidden(w, "Access from this address is not allowed")
		}
		return http.HandlerFunc(hfn)
	}
}
