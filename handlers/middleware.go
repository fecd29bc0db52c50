package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jameshuangoutlook/arkiviatodo/firebase"
	"github.com/jameshuangoutlook/arkiviatodo/todos"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

// LoggingMiddleware records every handled request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		utilities.LogRequest(r.Method, r.URL.Path, r.RemoteAddr, rw.statusCode, time.Since(start))
	})
}

// responseWriter captures the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AuthMiddleware verifies the bearer ID token and places the caller's
// identity (uid and verified email) in the request context.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utilities.LogError(fmt.Errorf("authorization header missing"), "Authentication failed")
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		verifiedToken, err := firebase.VerifyUserToken(tokenString)
		if err != nil {
			utilities.LogError(err, "Invalid token")
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		caller := todos.Caller{
			UID:   verifiedToken.UID,
			Email: firebase.TokenEmail(verifiedToken),
		}
		ctx := context.WithValue(r.Context(), callerContextKey, caller)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
