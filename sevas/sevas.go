package sevas

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"matha/db"
	"matha/models"
	"matha/rdx"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	cacheKey = "catalog:sevas"
	cacheTTL = 5 * time.Minute
)

// GetSevas handles GET /api/sevas. The catalog is small and admin-written
// only, so the serialized list is cached in Redis; a cache miss or a Redis
// outage falls back to a direct read.
func GetSevas(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sevaList, err := utils.FindAndDecode[models.Seva](ctx, db.SevaCollection, bson.M{})
	if err != nil {
		log.Println("seva list error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sevas")
		return
	}

	out := make([]map[string]any, 0, len(sevaList))
	for _, s := range sevaList {
		out = append(out, s.Serialize())
	}

	if payload, err := json.Marshal(out); err == nil {
		if err := rdx.RdxSet(cacheKey, string(payload), cacheTTL); err != nil {
			log.Println("seva cache set failed:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, out)
}

// CreateSeva handles POST /api/sevas (admin only).
func CreateSeva(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Time        string  `json:"time"`
		Cost        float64 `json:"cost"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Time = strings.TrimSpace(input.Time)
	if input.Title == "" || input.Time == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if input.Cost < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cost must be non-negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	seva := models.Seva{
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		Time:        input.Time,
		Cost:        input.Cost,
		CreatedAt:   time.Now().UTC(),
	}
	res, err := db.SevaCollection.InsertOne(ctx, seva)
	if err != nil {
		log.Println("seva insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create seva")
		return
	}

	if err := rdx.RdxDel(cacheKey); err != nil {
		log.Println("seva cache invalidation failed:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id": res.InsertedID.(primitive.ObjectID).Hex(),
	})
}
