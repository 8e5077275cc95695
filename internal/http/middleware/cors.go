package middleware

import (
	"net/http"
	"strings"
)

const (
	corsDefaultHeaders = "Authorization, Content-Type"
	corsMethods        = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsMaxAge         = "600"
)

// corsPolicy is the parsed origin allowlist. A "*" entry admits any origin;
// the matched origin is always echoed back rather than the wildcard so
// responses stay cacheable per origin.
type corsPolicy struct {
	any     bool
	origins map[string]struct{}
}

func parseCORSPolicy(allowedOrigins []string) corsPolicy {
	p := corsPolicy{origins: map[string]struct{}{}}
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		switch origin {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[origin] = struct{}{}
		}
	}
	return p
}

func (p corsPolicy) admits(origin string) bool {
	if p.any {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

// CORS provides allowlist-based CORS handling, answering preflight requests
// without invoking the wrapped handler.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := parseCORSPolicy(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin != "" && policy.admits(origin) {
				headers := corsDefaultHeaders
				if req := r.Header.Get("Access-Control-Request-Headers"); req != "" {
					headers = req
				}
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Allow-Methods", corsMethods)
				w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			}

			if r.Method == http.MethodOptions && origin != "" && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
