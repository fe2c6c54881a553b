package handler

import (
	"net/http"

	"usersvc/internal/app/user"
	"usersvc/internal/pkg/errs"
	"usersvc/internal/pkg/resp"
)

// HandleCurrent returns the identity of the authenticated caller.
func HandleCurrent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := user.FromContext(r.Context())
		if u == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"id":    u.ID.String(),
			"name":  u.Name,
			"email": u.Email,
		})
	}
}
