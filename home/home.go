package home

import (
	"context"
	"net/http"
	"os"
	"time"

	"matha/db"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
)

// Index handles GET /, a liveness message.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Devotee services API running",
	})
}

// TestStore handles GET /test, a store connectivity diagnostic.
func TestStore(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	response := utils.M{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("MONGODB_URI"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		response["database"] = "error: " + err.Error()
		utils.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"
	if names, err := db.CollectionNames(ctx, 10); err == nil {
		response["collections"] = names
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}
