package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDevoteeUserSerialize_HidesCredentials(t *testing.T) {
	u := DevoteeUser{
		ID:           primitive.NewObjectID(),
		Name:         "Radha",
		Email:        "radha@example.com",
		PasswordHash: "deadbeef$cafe",
		SessionToken: "sekrit",
		IsAdmin:      false,
		CreatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	doc := u.Serialize()

	assert.Equal(t, u.ID.Hex(), doc["id"])
	assert.Equal(t, "radha@example.com", doc["email"])
	assert.NotContains(t, doc, "password_hash")
	assert.NotContains(t, doc, "session_token")
	assert.NotContains(t, doc, "phone", "unset optional fields stay out")
	assert.Equal(t, "2024-03-01T10:00:00Z", doc["created_at"])
}

func TestRoomSerialize_AmenitiesDefaultEmpty(t *testing.T) {
	r := Room{ID: primitive.NewObjectID(), Name: "Standard Room", Capacity: 2, Price: 800}

	doc := r.Serialize()

	assert.Equal(t, []string{}, doc["amenities"])
	assert.Equal(t, 800.0, doc["price"])
}

func TestSevaBookingSerialize_DatesAsText(t *testing.T) {
	b := SevaBooking{
		ID:        primitive.NewObjectID(),
		UserEmail: "radha@example.com",
		SevaID:    "65f0aabbccddeeff00112233",
		Date:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Quantity:  3,
		Amount:    300,
		Status:    StatusConfirmed,
		ReceiptNo: "rcpt-1",
		CreatedAt: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	doc := b.Serialize()

	assert.Equal(t, "2024-06-15", doc["date"])
	assert.Equal(t, "2024-06-01T12:30:00Z", doc["created_at"])
	assert.Equal(t, "confirmed", doc["status"])
	assert.Equal(t, "rcpt-1", doc["receipt_no"])
}

func TestRoomBookingSerialize(t *testing.T) {
	b := RoomBooking{
		ID:        primitive.NewObjectID(),
		UserEmail: "radha@example.com",
		RoomID:    "65f0aabbccddeeff00112233",
		CheckIn:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Guests:    2,
		Amount:    1600,
		Status:    StatusConfirmed,
	}

	doc := b.Serialize()

	assert.Equal(t, "2024-01-01", doc["check_in"])
	assert.Equal(t, "2024-01-03", doc["check_out"])
	assert.Equal(t, 1600.0, doc["amount"])
	assert.NotContains(t, doc, "receipt_no")
}

func TestNewsPostSerialize_TagsDefaultEmpty(t *testing.T) {
	p := NewsPost{
		ID:          primitive.NewObjectID(),
		Title:       "Rathotsava",
		Content:     "Annual chariot festival schedule",
		PublishedOn: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	}

	doc := p.Serialize()

	assert.Equal(t, []string{}, doc["tags"])
	assert.Equal(t, "2024-02-20", doc["published_on"])
}
