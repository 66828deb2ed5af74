package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
)

// BasicAuth returns middleware that requires HTTP basic credentials
// matching user and password. Failures receive 401 with a challenge for realm.
func BasicAuth(realm, user, password string) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if !ok || !equal(u, user) || !equal(p, password) {
				w.Header().Set("WWW-Authenticate", challenge)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
