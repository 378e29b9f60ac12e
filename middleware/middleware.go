package middleware

import (
	"context"
	"net/http"
	"time"

	"matha/auth"
	"matha/globals"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
)

// Authenticate resolves the bearer token against the user collection and
// stores the resolved user in the request context. Tokens are opaque; a
// lookup miss is a 401.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := auth.UserByToken(ctx, r.Header.Get("Authorization"))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
			return
		}

		rctx := context.WithValue(r.Context(), globals.UserKey, user)
		next(w, r.WithContext(rctx), ps)
	}
}

// RequireAdmin gates a route on the caller's is_admin flag. Must run after
// Authenticate so the 401 case is decided first.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		user, ok := utils.UserFromRequest(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
			return
		}
		if !user.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r, ps)
	}
}
