package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	UserCollection        *mongo.Collection
	SevaCollection        *mongo.Collection
	RoomCollection        *mongo.Collection
	SevaBookingCollection *mongo.Collection
	RoomBookingCollection *mongo.Collection
	NewsCollection        *mongo.Collection
	ContactCollection     *mongo.Collection
	Client                *mongo.Client
	Database              *mongo.Database
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "mathadb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	Database = Client.Database(dbName)
	UserCollection = Database.Collection("devoteeuser")
	SevaCollection = Database.Collection("seva")
	RoomCollection = Database.Collection("room")
	SevaBookingCollection = Database.Collection("sevabooking")
	RoomBookingCollection = Database.Collection("roombooking")
	NewsCollection = Database.Collection("newspost")
	ContactCollection = Database.Collection("contactmessage")
}

// Ping verifies the store is reachable.
func Ping(ctx context.Context) error {
	return Client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists up to limit collection names, for diagnostics.
func CollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := Database.ListCollectionNames(ctx, map[string]any{})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
