/*
Package handler provides HTTP handler functions for user registration, login
and identity lookup.
*/
package handler

import (
	"net/http"

	"usersvc/internal/app/account"
	"usersvc/internal/pkg/req"
	"usersvc/internal/pkg/resp"
)

// HandleTest answers the route-level liveness probe.
func HandleTest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{"msg": "Users Works"})
	}
}

// HandleRegister creates a user account and returns the stored user.
// The password hash is never part of the response.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input account.RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		u, err := deps.Accounts.Register(r.Context(), input)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, u)
	}
}

// HandleLogin verifies credentials and issues a bearer token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input account.LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		token, err := deps.Accounts.Login(r.Context(), input)
		if err != nil {
			resp.RespondErr(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success": true,
			"token":   token,
		})
	}
}
