// Package auth orchestrates registration, login, logout and profile updates
// against the backend, and drives the session store as a side effect. Every
// operation returns a Result envelope; callers branch on Success and never
// see an error or a panic.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/spotilike/go-client/api"
	"github.com/spotilike/go-client/session"
	"github.com/spotilike/go-client/storage"
	"github.com/spotilike/go-client/users"
)

// Result is the uniform return shape of every auth operation.
type Result struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
	Message string      `json:"message"`
}

// Deps holds all dependencies for the auth Service.
type Deps struct {
	Client  *api.Client    // HTTP client bound to the backend
	Session *session.Store // Reactive session state
	Storage storage.Repo   // Durable storage for the bearer token
}

// Service provides the authentication operations of the client.
type Service struct {
	deps Deps
}

func NewService(deps Deps) (*Service, error) {
	if deps.Client == nil {
		return nil, errors.New("[auth.NewService] api client is required")
	}
	if deps.Session == nil {
		return nil, errors.New("[auth.NewService] session store is required")
	}
	if deps.Storage == nil {
		return nil, errors.New("[auth.NewService] storage repo is required")
	}
	return &Service{deps: deps}, nil
}

// RegisterRequest is the signup payload sent to POST /users/signup.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Data    *users.User `json:"data"`
	Message string      `json:"message"`
}

// Register creates a new account. The session is left untouched: the user
// still has to log in afterwards.
func (s *Service) Register(ctx context.Context, req RegisterRequest) Result {
	s.deps.Session.SetLoading(true)
	defer s.deps.Session.SetLoading(false)

	var resp signupResponse
	if err := s.deps.Client.Post(ctx, "/users/signup", req, &resp); err != nil {
		return Result{Success: false, Message: normalizeMessage(err)}
	}

	message := resp.Message
	if message == "" {
		message = "Inscription réussie"
	}
	return Result{Success: true, User: resp.Data, Message: message}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}

// Login authenticates against POST /users/login. On success the returned
// token is persisted and the session switches to the returned user. On any
// failure the session is untouched.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	s.deps.Session.SetLoading(true)
	defer s.deps.Session.SetLoading(false)

	var resp loginResponse
	if err := s.deps.Client.Post(ctx, "/users/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return Result{Success: false, Message: normalizeMessage(err)}
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Erreur lors de la connexion"
		}
		return Result{Success: false, Message: message}
	}

	// Token first, then the user record. The two writes are independent
	// keys and are not atomic.
	if err := s.deps.Storage.Set(storage.TokenKey, resp.Token); err != nil {
		log.Err(err).Msg("Failed to persist bearer token")
	}
	s.deps.Session.SetUser(resp.User)

	message := resp.Message
	if message == "" && resp.User != nil {
		message = fmt.Sprintf("Bienvenue %s !", resp.User.Username)
	}
	return Result{Success: true, User: resp.User, Token: resp.Token, Message: message}
}

// Logout clears the session and removes the persisted token. It always
// succeeds, including when called while already anonymous.
func (s *Service) Logout() Result {
	s.deps.Session.Logout()
	if err := s.deps.Storage.Delete(storage.TokenKey); err != nil {
		log.Err(err).Msg("Failed to remove persisted token")
	}
	return Result{Success: true, Message: "Déconnexion réussie"}
}

// UpdateRequest is the profile-update payload sent to PUT /users/:id.
type UpdateRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password,omitempty"`
}

// UpdateProfile updates the user identified by userID and, on success,
// replaces the session's current user with the record the backend returned.
// The request carries the stored bearer token.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateRequest) Result {
	s.deps.Session.SetLoading(true)
	defer s.deps.Session.SetLoading(false)

	var raw json.RawMessage
	if err := s.deps.Client.Put(ctx, fmt.Sprintf("/users/%d", userID), req, &raw); err != nil {
		return Result{Success: false, Message: normalizeMessage(err)}
	}

	user := decodeUpdatedUser(raw)
	s.deps.Session.SetUser(user)

	return Result{Success: true, User: user, Message: "Profil mis à jour"}
}

// decodeUpdatedUser accepts both response shapes the backend produces for
// profile updates: an envelope with the record under "data", or the bare
// record itself.
func decodeUpdatedUser(raw json.RawMessage) *users.User {
	var env struct {
		Data *users.User `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data
	}

	user := &users.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		log.Err(err).Msg("Failed to decode updated user record")
		return nil
	}
	return user
}

// IsAuthenticated reports whether a user is currently logged in.
func (s *Service) IsAuthenticated() bool {
	return s.deps.Session.IsAuthenticated()
}

// CurrentUser returns the logged-in user, or nil when anonymous.
func (s *Service) CurrentUser() *users.User {
	return s.deps.Session.CurrentUser()
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *Service) Token() string {
	token, _, err := s.deps.Storage.Get(storage.TokenKey)
	if err != nil {
		log.Err(err).Msg("Failed to read stored token")
		return ""
	}
	return token
}
