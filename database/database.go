package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var Users *mongo.Collection
var Girls *mongo.Collection
var Trans *mongo.Collection
var Profiles *mongo.Collection
var ProfileImages *mongo.Collection
var ProfileReviews *mongo.Collection
var ResetTokens *mongo.Collection

func ConnectDB() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Println("MONGODB_URI not set, using default localhost")
		uri = "mongodb://127.0.0.1:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}

	if err := Client.Ping(ctx, nil); err != nil {
		return err
	}

	db := Client.Database("barcelona")
	Users = db.Collection("users")
	Girls = db.Collection("girls")
	Trans = db.Collection("trans")
	Profiles = db.Collection("profiles")
	ProfileImages = db.Collection("profile_images")
	ProfileReviews = db.Collection("profile_reviews")
	ResetTokens = db.Collection("password_reset_tokens")

	log.Println("Connected to MongoDB successfully")
	return nil
}

// ListingCollection maps a listing category to its backing collection.
// The two categories share all repository logic; the collection name is the
// only thing that differs at the storage boundary.
func ListingCollection(category string) *mongo.Collection {
	if category == "trans" {
		return Trans
	}
	return Girls
}

func DisconnectDB() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
