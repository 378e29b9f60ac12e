package rooms

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
	cacheKey = "catalog:rooms"
	cacheTTL = 5 * time.Minute
)

// GetRooms handles GET /api/rooms, cache-aside like the seva catalog.
func GetRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	roomList, err := utils.FindAndDecode[models.Room](ctx, db.RoomCollection, bson.M{})
	if err != nil {
		log.Println("room list error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}

	out := make([]map[string]any, 0, len(roomList))
	for _, room := range roomList {
		out = append(out, room.Serialize())
	}

	if payload, err := json.Marshal(out); err == nil {
		if err := rdx.RdxSet(cacheKey, string(payload), cacheTTL); err != nil {
			log.Println("room cache set failed:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, out)
}

// CreateRoom handles POST /api/rooms (admin only).
func CreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name      string   `json:"name"`
		Capacity  int      `json:"capacity"`
		Price     float64  `json:"price"`
		Amenities []string `json:"amenities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if input.Capacity < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Capacity must be at least 1")
		return
	}
	if input.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must be non-negative")
		return
	}
	if input.Amenities == nil {
		input.Amenities = []string{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	room := models.Room{
		Name:      input.Name,
		Capacity:  input.Capacity,
		Price:     input.Price,
		Amenities: input.Amenities,
		CreatedAt: time.Now().UTC(),
	}
	res, err := db.RoomCollection.InsertOne(ctx, room)
	if err != nil {
		log.Println("room insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	if err := rdx.RdxDel(cacheKey); err != nil {
		log.Println("room cache invalidation failed:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id": res.InsertedID.(primitive.ObjectID).Hex(),
	})
}
