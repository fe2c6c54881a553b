/*
Package resp provides helper functions for constructing and sending HTTP JSON responses.

Successful responses carry the handler's payload as-is; error responses carry the
field-to-message map (or {"error": message}) of an *errs.CustomError with its status.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"usersvc/internal/pkg/errs"
	"usersvc/internal/pkg/logx"
)

// RespondJSON sets the JSON headers, writes httpStatus and the encoded payload.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logx.Ctx(r.Context()).Error().
			Err(err).
			Int("http_status", httpStatus).
			Msg("Error encoding JSON response")

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpStatus)
	_, _ = w.Write(response)
}

// RespondSuccess sends data with HTTP 200 OK.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, data)
}

// RespondError sends the client-facing body of customErr with its HTTP status.
// A nil customErr is reported as ErrUnknown.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, customErr.Body())
}

// RespondErr is RespondError for plain errors returned by the service layer.
func RespondErr(w http.ResponseWriter, r *http.Request, err error) {
	RespondError(w, r, errs.From(err))
}
