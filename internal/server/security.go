package server

import "net/http"

// SecurityConfig controls the hardening middleware for the metrics endpoint.
type SecurityConfig struct {
	// EnableCORS toggles CORS headers on responses.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed when CORS is enabled.
	AllowedOrigins []string
	// AllowedMethods lists the methods allowed when CORS is enabled.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the defaults: permissive CORS limited to
// read-only methods.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware sets the standard security headers, applies CORS and
// answers preflight requests before delegating to next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if config.EnableCORS {
			origin := "*"
			if len(config.AllowedOrigins) > 0 {
				origin = config.AllowedOrigins[0]
			}
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", joinMethods(config.AllowedMethods))
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func joinMethods(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
