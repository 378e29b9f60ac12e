package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seva is a catalog entry for a ritual offering. Admin-created, immutable
// once created.
type Seva struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Time        string             `bson:"time"`
	Cost        float64            `bson:"cost"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (s Seva) Serialize() map[string]any {
	doc := map[string]any{
		"id":    s.ID.Hex(),
		"title": s.Title,
		"time":  s.Time,
		"cost":  s.Cost,
	}
	if s.Description != "" {
		doc["description"] = s.Description
	}
	if !s.CreatedAt.IsZero() {
		doc["created_at"] = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

// Room is a lodging catalog entry. Price is per night.
type Room struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Capacity  int                `bson:"capacity"`
	Price     float64            `bson:"price"`
	Amenities []string           `bson:"amenities"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r Room) Serialize() map[string]any {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	doc := map[string]any{
		"id":        r.ID.Hex(),
		"name":      r.Name,
		"capacity":  r.Capacity,
		"price":     r.Price,
		"amenities": amenities,
	}
	if !r.CreatedAt.IsZero() {
		doc["created_at"] = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}
