package utils

import (
	"encoding/json"
	"net/http"

	"ecommerce-backend/pkg/apperr"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the single error body shape every failure funnels into.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// ResponseError maps a service error onto the error body. Typed errors carry
// their own status and details; anything else becomes a bare 500 so internals
// never leak to the caller.
func ResponseError(w http.ResponseWriter, err error) {
	if appErr := apperr.From(err); appErr != nil {
		ResponseJSON(w, appErr.StatusCode(), ErrorResponse{
			Message: appErr.Message,
			Status:  appErr.StatusCode(),
			Details: appErr.Details,
		})
		return
	}

	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "Something went wrong",
		Status:  http.StatusInternalServerError,
	})
}

// ResponseValidationError returns 400 with per-field messages attached.
func ResponseValidationError(w http.ResponseWriter, errors map[string]string) {
	ResponseError(w, apperr.BadRequestWithDetails("Validation error", errors))
}

// ResponseNotFoundRoute is the fallback for unmatched routes.
func ResponseNotFoundRoute(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusNotFound, map[string]any{
		"error":      "Route not found.",
		"statusCode": http.StatusNotFound,
	})
}
