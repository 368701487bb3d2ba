package http

import (
	"net/http"

	"finai/internal/core"
	flog "finai/internal/log"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	u, err := s.sessions.SignUp(r.Context(), sanitizeInput(req.Name), sanitizeInput(req.Email), req.Password)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Sign-up rejected", flog.FieldOperation, flog.OpSignUp, flog.FieldError, err)
		errorResponseFor(err).Write(w)
		return
	}
	NewJSONResponse().Status(http.StatusCreated).Data(u).Write(w)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponseFor(err).Write(w)
		return
	}
	u, err := s.sessions.SignIn(r.Context(), sanitizeInput(req.Email), req.Password)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Sign-in rejected", flog.FieldOperation, flog.OpSignIn, flog.FieldError, err)
		errorResponseFor(err).Write(w)
		return
	}
	NewJSONResponse().Data(u).Write(w)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	s.sessions.SignOut(r.Context())
	NewJSONResponse().Status(http.StatusNoContent).Write(w)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := s.sessions.CurrentUser()
	if !ok {
		errorResponseFor(core.ErrAuthenticationRequired).Write(w)
		return
	}
	NewJSONResponse().Data(u).Write(w)
}
