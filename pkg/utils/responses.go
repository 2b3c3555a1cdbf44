package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes the envelope with the given HTTP code.
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	})
}

// ResponseError writes a failed envelope. errors may carry field or seat details.
func ResponseError(w http.ResponseWriter, code int, message string, errors any) {
	ResponseJSON(w, code, false, message, nil, errors)
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseError(w, http.StatusBadRequest, message, errors)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, nil)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// ResponseConflict answers 409, used for seat conflicts and illegal state changes.
func ResponseConflict(w http.ResponseWriter, message string, errors any) {
	ResponseError(w, http.StatusConflict, message, errors)
}

// ResponseGone answers 410 when a hold has expired and the flow must restart.
func ResponseGone(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusGone, message, nil)
}

func ResponsePaymentRequired(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusPaymentRequired, message, nil)
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, nil)
}
