package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/dealflow-backend/internal/config"
)

// originPolicy decides which browser origins may call the API. Entries are
// exact origins, "*", or a subdomain pattern such as "https://*.fund.vc".
type originPolicy struct {
	any      bool
	exact    map[string]struct{}
	suffixes []struct{ scheme, suffix string }
}

func newOriginPolicy(list string) originPolicy {
	p := originPolicy{exact: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch {
		case o == "":
		case o == "*":
			p.any = true
		case strings.Contains(o, "://*."):
			scheme, host, _ := strings.Cut(o, "://*")
			p.suffixes = append(p.suffixes, struct{ scheme, suffix string }{scheme + "://", host})
		default:
			p.exact[o] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.any {
		return true
	}
	if _, ok := p.exact[origin]; ok {
		return true
	}
	for _, s := range p.suffixes {
		rest, ok := strings.CutPrefix(origin, s.scheme)
		if ok && strings.HasSuffix(rest, s.suffix) && len(rest) > len(s.suffix) {
			return true
		}
	}
	return false
}

// CORS echoes allowed origins and answers preflight requests itself. Plain
// OPTIONS requests without a preflight header reach the router. The request
// id header is exposed so the web client can quote it in bug reports.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newOriginPolicy(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if policy.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
