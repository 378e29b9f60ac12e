package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"matha/db"
	"matha/models"
	"matha/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookSeva handles POST /api/book/seva. The amount is computed from the live
// catalog entry, never taken from the client.
func BookSeva(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := utils.UserFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	var input struct {
		SevaID   string `json:"seva_id"`
		Date     string `json:"date"`
		Quantity *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.SevaID == "" || input.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	oid, err := primitive.ObjectIDFromHex(input.SevaID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Seva not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var seva models.Seva
	err = db.SevaCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&seva)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Seva not found")
		return
	}
	if err != nil {
		log.Println("seva lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	booking := models.SevaBooking{
		UserEmail: user.Email,
		SevaID:    input.SevaID,
		Date:      date,
		Quantity:  quantity,
		Amount:    SevaAmount(seva.Cost, quantity),
		Status:    models.StatusConfirmed,
		ReceiptNo: utils.GetUUID(),
		CreatedAt: time.Now().UTC(),
	}
	res, err := db.SevaBookingCollection.InsertOne(ctx, booking)
	if err != nil {
		log.Println("seva booking insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id":         res.InsertedID.(primitive.ObjectID).Hex(),
		"receipt_no": booking.ReceiptNo,
	})
}

// BookRoom handles POST /api/book/room.
func BookRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := utils.UserFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	var input struct {
		RoomID   string `json:"room_id"`
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
		Guests   int    `json:"guests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.RoomID == "" || input.CheckIn == "" || input.CheckOut == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if input.Guests < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Guests must be at least 1")
		return
	}

	checkIn, err := utils.ParseDate(input.CheckIn)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check-in date")
		return
	}
	checkOut, err := utils.ParseDate(input.CheckOut)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check-out date")
		return
	}

	oid, err := primitive.ObjectIDFromHex(input.RoomID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Room not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var room models.Room
	err = db.RoomCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		log.Println("room lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	amount, err := RoomAmount(room.Price, checkIn, checkOut)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Check-out must be after check-in")
		return
	}

	booking := models.RoomBooking{
		UserEmail: user.Email,
		RoomID:    input.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    input.Guests,
		Amount:    amount,
		Status:    models.StatusConfirmed,
		ReceiptNo: utils.GetUUID(),
		CreatedAt: time.Now().UTC(),
	}
	res, err := db.RoomBookingCollection.InsertOne(ctx, booking)
	if err != nil {
		log.Println("room booking insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"id":         res.InsertedID.(primitive.ObjectID).Hex(),
		"receipt_no": booking.ReceiptNo,
	})
}

// MyBookings handles GET /api/bookings?kind=seva|room. Without a kind it
// returns both lists keyed by entity. Always scoped to the caller's email,
// newest first.
func MyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := utils.UserFromRequest(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_email": user.Email}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	switch r.URL.Query().Get("kind") {
	case "seva":
		list, err := sevaBookings(ctx, filter, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, list)
	case "room":
		list, err := roomBookings(ctx, filter, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, list)
	default:
		sevaList, err := sevaBookings(ctx, filter, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}
		roomList, err := roomBookings(ctx, filter, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"sevas": sevaList,
			"rooms": roomList,
		})
	}
}

func sevaBookings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]map[string]any, error) {
	list, err := utils.FindAndDecode[models.SevaBooking](ctx, db.SevaBookingCollection, filter, opts)
	if err != nil {
		log.Println("seva bookings list error:", err)
		return nil, err
	}
	out := make([]map[string]any, 0, len(list))
	for _, b := range list {
		out = append(out, b.Serialize())
	}
	return out, nil
}

func roomBookings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]map[string]any, error) {
	list, err := utils.FindAndDecode[models.RoomBooking](ctx, db.RoomBookingCollection, filter, opts)
	if err != nil {
		log.Println("room bookings list error:", err)
		return nil, err
	}
	out := make([]map[string]any, 0, len(list))
	for _, b := range list {
		out = append(out, b.Serialize())
	}
	return out, nil
}
