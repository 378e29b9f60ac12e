package seed

import (
	"context"
	"log"
	"net/http"
	"time"

	"matha/db"
	"matha/models"
	"matha/rdx"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func sampleSevas(now time.Time) []interface{} {
	return []interface{}{
		models.Seva{Title: "Suprabhatam Seva", Description: "Morning worship", Time: "6:30 AM", Cost: 100, CreatedAt: now},
		models.Seva{Title: "Maha Mangalarati", Description: "Evening aarti", Time: "7:00 PM", Cost: 150, CreatedAt: now},
		models.Seva{Title: "Annadan Seva", Description: "Food offering", Time: "12:30 PM", Cost: 250, CreatedAt: now},
	}
}

func sampleRooms(now time.Time) []interface{} {
	return []interface{}{
		models.Room{Name: "Standard Room", Capacity: 2, Price: 800, Amenities: []string{"Fan", "Attached Bath"}, CreatedAt: now},
		models.Room{Name: "AC Room", Capacity: 3, Price: 1500, Amenities: []string{"AC", "Geyser", "Attached Bath"}, CreatedAt: now},
	}
}

// SeedCatalog handles POST /api/seed (admin only). Each collection is seeded
// only when empty, so repeat calls are no-ops.
func SeedCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	now := time.Now().UTC()

	count, err := db.SevaCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("seed seva count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count == 0 {
		if _, err := db.SevaCollection.InsertMany(ctx, sampleSevas(now)); err != nil {
			log.Println("seed seva insert error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to seed sevas")
			return
		}
		if err := rdx.RdxDel("catalog:sevas"); err != nil {
			log.Println("seva cache invalidation failed:", err)
		}
	}

	count, err = db.RoomCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("seed room count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count == 0 {
		if _, err := db.RoomCollection.InsertMany(ctx, sampleRooms(now)); err != nil {
			log.Println("seed room insert error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to seed rooms")
			return
		}
		if err := rdx.RdxDel("catalog:rooms"); err != nil {
			log.Println("room cache invalidation failed:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}
