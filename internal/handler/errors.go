package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"hackerNews/internal/models"
	"hackerNews/internal/session"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	msgBadRequest     = "Неверный формат запроса"
	msgNotFound       = "Не найдено."
	msgNotAuthorized  = "Учетные данные не были предоставлены."
	msgInternalError  = "Внутренняя ошибка сервера"
	msgBadCredentials = "Неверное имя пользователя или пароль."
	msgInvalidData    = "Некорректные данные."
	msgInvalidType    = "Некорректный тип значения."
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Error("ошибка при записи ответа")
	}
}

// writeServiceError maps error kinds to statuses; field errors keep their per-field shape
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeSuccess(w, vErr.Fields, http.StatusBadRequest)
	case errors.Is(err, models.ErrValidation):
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Warn("отклонены некорректные данные")
		writeSuccess(w, map[string][]string{"non_field_errors": {msgInvalidData}}, http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, msgNotFound, http.StatusNotFound)
	case errors.Is(err, models.ErrUnauthorized):
		WriteError(w, msgNotAuthorized, http.StatusForbidden)
	default:
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("необработанная ошибка")
		WriteError(w, msgInternalError, http.StatusInternalServerError)
	}
}

// decodeJSON reads the body over dst, so prefilled fields survive a partial payload.
// An empty body leaves dst untouched and lets validation report the missing fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return models.NewValidationError(typeErr.Field, msgInvalidType)
	}
	return models.NewValidationError("non_field_errors", msgBadRequest)
}

// pathID reads {id}; the route pattern already limits it to digits
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, msgNotFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, msgNotAuthorized, http.StatusForbidden)
		return 0, false
	}
	return userID, true
}
