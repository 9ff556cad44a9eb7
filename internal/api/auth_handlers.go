package api

import (
	"net/http"
	"time"

	"github.com/seenhub/seenhub-server/internal/http/response"
	"github.com/seenhub/seenhub-server/internal/service"
)

// sessionCookieName is the cookie carrying the PASETO session token.
const sessionCookieName = "token"

// sessionCookie builds the session cookie. A negative maxAge expires it.
func (s *Server) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// handleRegister creates a new user account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user, err := s.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, user, s.logger)
}

// handleLogin verifies credentials and sets the session cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	http.SetCookie(w, s.sessionCookie(resp.Token, s.authService.SessionDuration()))
	response.Success(w, resp.User, s.logger)
}

// handleLogout expires the session cookie. The token itself stays valid
// until its expiry; sessions are stateless.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, s.sessionCookie("", -time.Hour))
	response.Success(w, map[string]string{
		"message": "logged out",
	}, s.logger)
}

// sessionResponse reports whether the caller holds a valid session.
type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
	User          any  `json:"user,omitempty"`
}

// handleSession resolves the session cookie into the current user, without
// failing on unauthenticated requests.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		response.Success(w, sessionResponse{Authenticated: false}, s.logger)
		return
	}

	user, err := s.authService.VerifyToken(r.Context(), token)
	if err != nil {
		response.Success(w, sessionResponse{Authenticated: false}, s.logger)
		return
	}

	response.Success(w, sessionResponse{
		Authenticated: true,
		User:          user.Public(),
	}, s.logger)
}

// handleDeleteAccount soft-deletes the caller's own account and ends the
// session.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "authentication required", s.logger)
		return
	}

	if err := s.authService.DeleteUser(r.Context(), user.ID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	http.SetCookie(w, s.sessionCookie("", -time.Hour))
	response.Success(w, map[string]string{
		"message": "account deleted",
	}, s.logger)
}
