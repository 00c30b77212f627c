package api

import (
	"errors"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/policy"
	"github.com/vortexlabs/portfolio-backend/session"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "portfolio_session"

// sessionMiddleware is the request gateway: it resolves the session
// cookie to a caller identity. It never rejects: absent, expired, or
// invalid credentials resolve to anonymous and the visibility policy
// decides downstream.
type sessionMiddleware struct {
	store     session.Store
	secret    []byte
	responder Responder
}

func newSessionMiddleware(store session.Store, secret []byte) sessionMiddleware {
	logger := log.With().Str("handlerName", "sessionMiddleware").Logger()
	return sessionMiddleware{
		store:     store,
		secret:    secret,
		responder: NewResponder(logger),
	}
}

func (m sessionMiddleware) resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := policy.Anonymous()

		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			if sessionID, err := session.ParseToken(m.secret, cookie.Value); err == nil {
				if s, err := m.store.Get(r.Context(), sessionID); err == nil && s != nil {
					caller = policy.Authenticated(s.UserID)
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(ctxWithCaller(r.Context(), caller)))
	})
}

// requireAuth rejects anonymous callers before the handler runs, so
// protected operations never reach the store unauthenticated.
func (m sessionMiddleware) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := policy.RequireAuthenticated(callerFromCtx(r.Context())); err != nil {
			m.responder.WriteError(w, m.rejection(r))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rejection explains why an anonymous caller was turned away. A bare
// request gets the generic unauthorized; a request that carried a
// session cookie learns whether the credential was invalid or the
// session itself has expired.
func (m sessionMiddleware) rejection(r *http.Request) *errs.ApiErr {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return errs.Unauthorized
	}
	if _, err := session.ParseToken(m.secret, cookie.Value); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return errs.NewExpiredSessionError()
		}
		return errs.NewInvalidSessionError()
	}
	// Token checked out but resolve found no live session behind it:
	// revoked by logout or aged out of the store.
	return errs.NewExpiredSessionError()
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Optionally log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// CORSCheckMiddleware rejects disallowed cross-origin preflights with
// a structured error instead of a silent header omission.
func CORSCheckMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// If no origin header, it's likely a same-origin request
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed := false
			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					allowed = true
					break
				}
			}

			if !allowed && r.Method == http.MethodOptions {
				responder := NewResponder(log.Logger)
				responder.WriteError(w, errs.NewCORSError(origin))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
