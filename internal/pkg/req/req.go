/*
Package req provides helper functions for HTTP request parsing and data binding.

It decodes JSON request bodies into handler input structs and reports format
and size problems as *errs.CustomError values ready to be sent to the client.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"usersvc/internal/pkg/errs"
)

// MaxJSONBodySize caps the size of a JSON request body (1 MB).
const MaxJSONBodySize int64 = 1 << 20

// BindJSON decodes the JSON body of r into dst. Unknown fields, trailing data,
// bodies over MaxJSONBodySize and non-JSON content types are rejected.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
