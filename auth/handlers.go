package auth

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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Register handles POST /api/auth/register
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !strings.Contains(input.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Duplicate email check. Check-then-act, not race-free, acceptable at
	// this traffic scale.
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	} else if err != mongo.ErrNoDocuments {
		log.Println("register lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	token := NewSessionToken()
	user := models.DevoteeUser{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  HashPassword(input.Password),
		Phone:         strings.TrimSpace(input.Phone),
		IsAdmin:       false,
		SessionToken:  token,
		TokenIssuedAt: time.Now().UTC(),
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		log.Println("register insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token":    token,
		"name":     user.Name,
		"email":    user.Email,
		"is_admin": false,
	})
}

// Login handles POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Same message whether the user is unknown or the password is wrong, so
	// account existence is not leaked.
	var user models.DevoteeUser
	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if !VerifyPassword(input.Password, user.PasswordHash) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := IssueSession(ctx, user.ID)
	if err != nil {
		log.Println("session issue error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":    token,
		"name":     user.Name,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}

// Me handles GET /api/auth/me
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := utils.UserFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Serialize())
}
