package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StatusConfirmed = "confirmed"

// SevaBooking is a devotee's reservation of a seva. The owner reference is
// the denormalized user email, not a structural link. Amount is always
// server-computed from the live catalog entry.
type SevaBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"user_email"`
	SevaID    string             `bson:"seva_id"`
	Date      time.Time          `bson:"date"`
	Quantity  int                `bson:"quantity"`
	Amount    float64            `bson:"amount"`
	Status    string             `bson:"status"`
	ReceiptNo string             `bson:"receipt_no,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (b SevaBooking) Serialize() map[string]any {
	doc := map[string]any{
		"id":         b.ID.Hex(),
		"user_email": b.UserEmail,
		"seva_id":    b.SevaID,
		"date":       b.Date.UTC().Format("2006-01-02"),
		"quantity":   b.Quantity,
		"amount":     b.Amount,
		"status":     b.Status,
	}
	if b.ReceiptNo != "" {
		doc["receipt_no"] = b.ReceiptNo
	}
	if !b.CreatedAt.IsZero() {
		doc["created_at"] = b.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

// RoomBooking is the lodging counterpart with a date range and guest count.
type RoomBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"user_email"`
	RoomID    string             `bson:"room_id"`
	CheckIn   time.Time          `bson:"check_in"`
	CheckOut  time.Time          `bson:"check_out"`
	Guests    int                `bson:"guests"`
	Amount    float64            `bson:"amount"`
	Status    string             `bson:"status"`
	ReceiptNo string             `bson:"receipt_no,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (b RoomBooking) Serialize() map[string]any {
	doc := map[string]any{
		"id":         b.ID.Hex(),
		"user_email": b.UserEmail,
		"room_id":    b.RoomID,
		"check_in":   b.CheckIn.UTC().Format("2006-01-02"),
		"check_out":  b.CheckOut.UTC().Format("2006-01-02"),
		"guests":     b.Guests,
		"amount":     b.Amount,
		"status":     b.Status,
	}
	if b.ReceiptNo != "" {
		doc["receipt_no"] = b.ReceiptNo
	}
	if !b.CreatedAt.IsZero() {
		doc["created_at"] = b.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}
