package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsPost is an admin-published announcement.
type NewsPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	PublishedOn time.Time          `bson:"published_on"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (p NewsPost) Serialize() map[string]any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	doc := map[string]any{
		"id":           p.ID.Hex(),
		"title":        p.Title,
		"content":      p.Content,
		"published_on": p.PublishedOn.UTC().Format("2006-01-02"),
		"tags":         tags,
	}
	if !p.CreatedAt.IsZero() {
		doc["created_at"] = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

// ContactMessage is a public enquiry from the contact form.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m ContactMessage) Serialize() map[string]any {
	doc := map[string]any{
		"id":      m.ID.Hex(),
		"name":    m.Name,
		"email":   m.Email,
		"message": m.Message,
	}
	if m.Phone != "" {
		doc["phone"] = m.Phone
	}
	if !m.CreatedAt.IsZero() {
		doc["created_at"] = m.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}
