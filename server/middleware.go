package server

import (
	"net/http"
	"net/url"
)

// Middleware wraps an http.Handler
type Middleware func(next http.Handler) http.Handler

// chain applies middlewares so that the first one is outermost
func chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// protocolVersion rejects requests announcing a protocol version other than version and
// echoes version back on every response
func protocolVersion(version string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if announced := r.Header.Get("MCP-Protocol-Version"); announced != "" && announced != version {
				http.Error(w, "unsupported MCP-Protocol-Version", http.StatusBadRequest)
				return
			}
			w.Header().Set("MCP-Protocol-Version", version)
			next.ServeHTTP(w, r)
		})
	}
}

// localOrigin rejects browser requests whose Origin is neither loopback nor explicitly allowed
func localOrigin(allowed []string) Middleware {
	allowedSet := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || allowedSet["*"] || allowedSet[origin] || isLoopback(origin) {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}

func isLoopback(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch parsed.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
