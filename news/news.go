package news

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetNews handles GET /api/news, newest published first.
func GetNews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "published_on", Value: -1}})
	posts, err := utils.FindAndDecode[models.NewsPost](ctx, db.NewsCollection, bson.M{}, opts)
	if err != nil {
		log.Println("news list error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}

	out := make([]map[string]any, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Serialize())
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// CreateNews handles POST /api/news (admin only).
func CreateNews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Title       string   `json:"title"`
		Content     string   `json:"content"`
		PublishedOn string   `json:"published_on"`
		Tags        []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if input.Title == "" || input.Content == "" || input.PublishedOn == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	publishedOn, err := utils.ParseDate(input.PublishedOn)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid published_on date")
		return
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post := models.NewsPost{
		Title:       input.Title,
		Content:     input.Content,
		PublishedOn: publishedOn,
		Tags:        input.Tags,
		CreatedAt:   time.Now().UTC(),
	}
	res, err := db.NewsCollection.InsertOne(ctx, post)
	if err != nil {
		log.Println("news insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create news post")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id": res.InsertedID.(primitive.ObjectID).Hex(),
	})
}
