package http

import (
	"context"
	"net/http"

	"github.com/setayeshnri/to-do-app-pern-main/internal/app"
	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The "Authorization" header carries the compact token directly, without a
// scheme prefix. The middleware validates it via
// [service.AuthService.ParseToken] and, on success, stores the authenticated
// user's ID in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The token is expired, malformed, signed with the wrong key, or issued
//     by a different issuer ([service.ErrTokenIsExpiredOrInvalid]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, http.StatusUnauthorized, app.MsgTokenExpiredOrInvalid)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
