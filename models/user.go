package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DevoteeUser is the identity record. Email is unique across users
// (application-checked at registration). A single session token lives on the
// record and is replaced wholesale on every login.
type DevoteeUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	Phone         string             `bson:"phone,omitempty"`
	IsAdmin       bool               `bson:"is_admin"`
	SessionToken  string             `bson:"session_token,omitempty"`
	TokenIssuedAt time.Time          `bson:"token_issued_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// Serialize maps the record to its response shape. Credentials and the
// session token never leave the server.
func (u DevoteeUser) Serialize() map[string]any {
	doc := map[string]any{
		"id":       u.ID.Hex(),
		"name":     u.Name,
		"email":    u.Email,
		"is_admin": u.IsAdmin,
	}
	if u.Phone != "" {
		doc["phone"] = u.Phone
	}
	if !u.CreatedAt.IsZero() {
		doc["created_at"] = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}
