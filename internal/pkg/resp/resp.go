/*
Package resp provides helper functions for constructing and sending standardized HTTP JSON responses.

Every response shares one envelope carrying the HTTP status, a business code, a message
and optional data, so clients can branch on the body alone.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"ysocial/internal/pkg/errs"
	"ysocial/internal/pkg/logx"
)

// JSONResponse defines the standardized JSON response structure returned by the application to clients.
type JSONResponse struct {
	// Status mirrors the HTTP status code of the response.
	Status int `json:"status"`

	// Code is the business status code (0 for success, others for specific errors, see errs package).
	Code int `json:"code"`

	// Message is the client-friendly status description or error message.
	Message string `json:"message"`

	// Data is the optional response payload (e.g., data returned from a successful request).
	Data any `json:"data,omitempty"`
}

// RespondJSON is a generic response function used to set the Content-Type and send the JSON payload.
// A 204 status is written without a body, as HTTP requires.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	if httpStatus == http.StatusNoContent {
		w.WriteHeader(httpStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// Respond sends a successful envelope with the given status and message.
func Respond(w http.ResponseWriter, r *http.Request, httpStatus int, message string, data any) {
	res := JSONResponse{
		Status:  httpStatus,
		Code:    0,
		Message: message,
		Data:    data,
	}
	RespondJSON(w, r, httpStatus, res)
}

// RespondSuccess sends a successful HTTP response (HTTP 200 OK).
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	Respond(w, r, http.StatusOK, "success", data)
}

// RespondError sends an HTTP response containing custom error information.
// Errors that are not *errs.CustomError are reported as errs.ErrUnknown.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	customErr := errs.From(err)
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	res := JSONResponse{
		Status:  customErr.Status,
		Code:    customErr.Code,
		Message: customErr.Message,
		Data:    customErr.Data,
	}
	RespondJSON(w, r, customErr.Status, res)
}
