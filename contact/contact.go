package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"matha/db"
	"matha/models"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmitMessage handles POST /api/contact. No auth, anyone may write in.
func SubmitMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Message = strings.TrimSpace(input.Message)
	if input.Name == "" || input.Email == "" || input.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !strings.Contains(input.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg := models.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     strings.TrimSpace(input.Phone),
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	res, err := db.ContactCollection.InsertOne(ctx, msg)
	if err != nil {
		log.Println("contact insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"ok": true,
		"id": res.InsertedID.(primitive.ObjectID).Hex(),
	})
}
