package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/vineauth/internal/common"
	"github.com/dmitrijs2005/vineauth/internal/server/models"
	"github.com/dmitrijs2005/vineauth/internal/server/services"
	"github.com/dmitrijs2005/vineauth/internal/server/validation"
)

const (
	msgInternal          = "Internal Server Error"
	msgInternalGetUser   = "Internal Server Error, getUser"
	msgInternalForgotPwd = "Internal Server Error, forgotPassword"
	msgUniqueEmail       = "Enter a Unique Email"
	msgBadCredentials    = "Login with correct credentials"
	msgUserNotFound      = "User not found"
)

type createUserRequest struct {
	Email       string `json:"email"`
	UserName    string `json:"userName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Country     string `json:"country"`
	FullName    string `json:"fullName"`
	Bvn         string `json:"bvn"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
}

type createUserResponse struct {
	Success   bool              `json:"success"`
	AuthToken string            `json:"authToken,omitempty"`
	Error     string            `json:"error,omitempty"`
	Errors    validation.Errors `json:"errors,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool         `json:"success"`
	AuthToken string       `json:"authToken"`
	User      *models.User `json:"user"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type validationResponse struct {
	Errors validation.Errors `json:"errors"`
}

type profileResponse struct {
	User *models.Profile `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type forgotPasswordResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		req = createUserRequest{}
	}

	if errs := validation.Registration(req.Email, req.UserName, req.Password); !errs.Empty() {
		writeJSON(w, http.StatusBadRequest, createUserResponse{Success: false, Errors: errs})
		return
	}

	token, err := s.users.Register(ctx, services.RegisterInput{
		Email:            req.Email,
		UserName:         req.UserName,
		Password:         req.Password,
		Phone:            req.PhoneNumber,
		Address:          req.Address,
		Country:          req.Country,
		FullName:         req.FullName,
		NationalIDNumber: req.Bvn,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		s.metrics.event(eventRegisterConflict)
		writeJSON(w, http.StatusOK, createUserResponse{Success: false, Error: msgUniqueEmail})
		return
	}
	if err != nil {
		s.logger.Error(ctx, "register failed", "error", err)
		writeText(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.metrics.event(eventRegistered)
	writeJSON(w, http.StatusOK, createUserResponse{Success: true, AuthToken: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		req = loginRequest{}
	}

	if errs := validation.Login(req.Email, req.Password); !errs.Empty() {
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: errs})
		return
	}

	user, token, err := s.users.Login(ctx, req.Email, req.Password)
	if errors.Is(err, common.ErrorUnauthorized) {
		s.metrics.event(eventLoginFailed)
		writeJSON(w, http.StatusBadRequest, failureResponse{Success: false, Error: msgBadCredentials})
		return
	}
	if err != nil {
		s.logger.Error(ctx, "login failed", "error", err)
		writeText(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.metrics.event(eventLoggedIn)
	writeJSON(w, http.StatusOK, loginResponse{Success: true, AuthToken: token, User: user})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msgAuthenticate})
		return
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: msgUserNotFound})
		return
	}
	if err != nil {
		s.logger.Error(ctx, "get user failed", "error", err, "user_id", userID)
		writeText(w, http.StatusInternalServerError, msgInternalGetUser)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{User: profile})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.logger.Error(ctx, "forgot password: bad body", "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalForgotPwd)
		return
	}

	task, err := s.users.ForgotPassword(ctx, req.Email)
	if err != nil {
		s.logger.Error(ctx, "forgot password failed", "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalForgotPwd)
		return
	}

	s.metrics.event(eventResetRequested)
	s.logger.Info(ctx, "password reset started", "task_id", task.ID)
	writeJSON(w, http.StatusOK, forgotPasswordResponse{Success: true})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
