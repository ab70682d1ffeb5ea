package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the dashboard client.
const (
	// Authentication errors
	ErrInvalidCredentials    = "AUTH_001" // wrong username or password
	ErrUserDisabled          = "AUTH_002" // user deactivated
	ErrUserNotFound          = "AUTH_003" // user not found
	ErrInvalidToken          = "AUTH_004" // malformed or unsigned token
	ErrExpiredToken          = "AUTH_005" // token past expiry
	ErrInsufficientPrivilege = "AUTH_006" // role does not allow the operation
	ErrUserAlreadyExists     = "AUTH_007" // username taken

	// Validation errors
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required field absent
	ErrInvalidFormat       = "VAL_003" // field present but unusable

	// Reporting errors
	ErrReportNotFound   = "RPT_001" // unknown analytics report
	ErrLocationNotFound = "RPT_002" // unknown practice location

	// Server errors
	ErrInternalServer    = "SRV_001" // unexpected failure
	ErrDatabaseOperation = "SRV_002" // storage failure
	ErrRouteNotFound     = "SRV_003" // no route matches the path
	ErrMethodNotAllowed  = "SRV_004" // route exists, method does not
)

// httpStatusMap resolves an error code to its HTTP status.
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrReportNotFound:        http.StatusNotFound,
	ErrLocationNotFound:      http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
}

// APIError is the standard error envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error envelope to the response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
