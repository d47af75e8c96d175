/*
Package handler provides the HTTP handlers and routing for the ysocial server.
*/
package handler

import (
	"net/http"

	"ysocial/internal/app/user"
	"ysocial/internal/pkg/errs"
	"ysocial/internal/pkg/logx"
	"ysocial/internal/pkg/metrics"
	"ysocial/internal/pkg/req"
	"ysocial/internal/pkg/resp"
)

type LoginInput struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// HandleLogin verifies user credentials and issues a session token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			deps.Metrics.RecordAuth(metrics.OpLogin, metrics.OutcomeInvalid)
			resp.RespondError(w, r, customErr)
			return
		}

		session, err := deps.Users.Login(r.Context(), input.Nickname, input.Password)
		if err != nil {
			if errs.Is(err, errs.ErrInvalidCredentials) {
				logx.Warn("login: invalid credentials", "nickname", input.Nickname)
				deps.Metrics.RecordAuth(metrics.OpLogin, metrics.OutcomeInvalidCredentials)
			} else {
				deps.Metrics.RecordAuth(metrics.OpLogin, metrics.OutcomeError)
			}
			resp.RespondError(w, r, err)
			return
		}

		deps.Metrics.RecordAuth(metrics.OpLogin, metrics.OutcomeSuccess)
		resp.Respond(w, r, http.StatusOK, "User logged in", session)
	}
}

// HandleLogout hands back an already-expiring token without a subject.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := deps.Users.Logout(r.Context())
		if err != nil {
			deps.Metrics.RecordAuth(metrics.OpLogout, metrics.OutcomeError)
			resp.RespondError(w, r, err)
			return
		}

		deps.Metrics.RecordAuth(metrics.OpLogout, metrics.OutcomeSuccess)
		resp.Respond(w, r, http.StatusOK, "User logged out", session)
	}
}

// HandleRegister creates a new user account.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input user.RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			deps.Metrics.RecordAuth(metrics.OpRegister, metrics.OutcomeInvalid)
			resp.RespondError(w, r, customErr)
			return
		}

		profile, err := deps.Users.Register(r.Context(), input)
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrDuplicateNickname):
				logx.Warn("registration conflict: nickname already exists", "nickname", input.Nickname)
				deps.Metrics.RecordAuth(metrics.OpRegister, metrics.OutcomeDuplicate)
			case errs.Is(err, errs.ErrValidation):
				deps.Metrics.RecordAuth(metrics.OpRegister, metrics.OutcomeInvalid)
			default:
				deps.Metrics.RecordAuth(metrics.OpRegister, metrics.OutcomeError)
			}
			resp.RespondError(w, r, err)
			return
		}

		deps.Metrics.RecordAuth(metrics.OpRegister, metrics.OutcomeSuccess)
		resp.Respond(w, r, http.StatusCreated, "User created", profile)
	}
}
