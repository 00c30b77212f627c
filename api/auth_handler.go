package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/errs"
	"github.com/vortexlabs/portfolio-backend/models"
	"github.com/vortexlabs/portfolio-backend/session"
	"golang.org/x/crypto/bcrypt"
)

type userStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Add(user *models.User) error
}

type authHandler struct {
	responder  Responder
	logger     zerolog.Logger
	users      userStore
	categories categoryStore
	tools      toolStore
	sessions   session.Store
	secret     []byte
	ttl        time.Duration
}

func newAuthHandler(users userStore, categories categoryStore, tools toolStore, sessions session.Store, secret []byte, ttl time.Duration) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		users:      users,
		categories: categories,
		tools:      tools,
		sessions:   sessions,
		secret:     secret,
		ttl:        ttl,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User models.PublicUser `json:"user"`
}

// login verifies credentials and issues a session cookie. A missing
// user and a wrong password return the same 401 so the endpoint does
// not confirm which emails exist.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.Malformed("login payload"))
			return
		}
		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.BadRequest("email and password are required"))
			return
		}

		user, err := h.users.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		s, err := session.Issue(r.Context(), h.sessions, user.ID, h.ttl)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}
		token, err := session.SignToken(h.secret, s)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to sign session token"))
			return
		}

		h.setSessionCookie(w, token, s.ExpiresAt)
		h.responder.WriteJSON(w, userResponse{User: user.Public()})
	}
}

// logout invalidates the server-side session. Logging out an already
// anonymous caller succeeds.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			if sessionID, err := session.ParseToken(h.secret, cookie.Value); err == nil {
				if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
					h.logger.Error().Err(err).Msg("failed to delete session")
				}
			}
		}

		h.clearSessionCookie(w)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logged out",
		})
	}
}

// me returns the authenticated user's redacted record.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := callerFromCtx(r.Context())
		userID, ok := caller.UserID()
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.users.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		h.responder.WriteJSON(w, userResponse{User: user.Public()})
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req registerRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.Malformed("register payload"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}
		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		// The unique index on users.email is the backstop; this check
		// just turns the common case into a friendlier response.
		if existing, err := h.users.FindByEmail(req.Email); err == nil && existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("user"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.User{
			Email:    req.Email,
			Password: string(hash),
			Name:     req.Name,
			Role:     req.Role,
		}
		if err := h.users.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, userResponse{User: user.Public()})
	}
}

func (h authHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h authHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
