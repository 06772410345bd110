package handlers

import (
	"errors"
	"net/http"

	"hackerNews/internal/models"
	"hackerNews/internal/serializer"

	log "github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req serializer.UserInput
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := serializer.Validate(h.Validate, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.WithField("user_id", user.ID).Info("пользователь зарегистрирован")
	writeSuccess(w, serializer.NewUser(user), http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := serializer.Validate(h.Validate, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			WriteError(w, msgBadCredentials, http.StatusForbidden)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	// cookie session for browsers, the token for everything else
	if err := h.Sessions.Login(w, r, user.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		AccessToken: accessToken,
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(w, r); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
