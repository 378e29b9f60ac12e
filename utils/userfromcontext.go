package utils

import (
	"net/http"

	"matha/globals"
	"matha/models"
)

func UserFromRequest(r *http.Request) (*models.DevoteeUser, bool) {
	user, ok := r.Context().Value(globals.UserKey).(*models.DevoteeUser)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
