package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"matha/db"
	"matha/models"
	"matha/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNoToken      = errors.New("missing authorization header")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// NewSessionToken returns a fresh 128-bit opaque token.
func NewSessionToken() string {
	return utils.RandomHex(16)
}

// StripBearer removes an optional case-insensitive "Bearer " prefix so both
// "Bearer <token>" and a raw token are accepted.
func StripBearer(header string) string {
	if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(header)
}

// IssueSession stores a new token and issuance time on the user record,
// replacing any previously issued token. There is one active session per
// user; tokens do not expire.
func IssueSession(ctx context.Context, userID primitive.ObjectID) (string, error) {
	token := NewSessionToken()
	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"session_token":   token,
			"token_issued_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return "", err
	}
	return token, nil
}

// UserByToken resolves an Authorization header value to the user holding
// that session token.
func UserByToken(ctx context.Context, header string) (*models.DevoteeUser, error) {
	if header == "" {
		return nil, ErrNoToken
	}
	token := StripBearer(header)
	if token == "" {
		return nil, ErrNoToken
	}

	var user models.DevoteeUser
	err := db.UserCollection.FindOne(ctx, bson.M{"session_token": token}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
