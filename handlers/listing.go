package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/database"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const publicListLimit = 50

type ListingRequest struct {
	Name           string                 `json:"name"`
	Age            int                    `json:"age"`
	Location       string                 `json:"location"`
	Images         []string               `json:"images"`
	ImagePublicIDs []string               `json:"imagePublicIds"`
	Gender         string                 `json:"gender"`
	FormFields     map[string]interface{} `json:"formFields"`

	// Only used by the sessionless trans flow.
	Email    string `json:"email"`
	Password string `json:"password"`
}

const (
	minImagesCreate = 4
	minImagesEdit   = 1
	maxImages       = 20
)

// validateListing checks the domain rules shared by self-service submission
// and admin edit. Only the first violation is reported.
func validateListing(name, location string, age, imageCount int, adminEdit bool) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Name is required.")
	}
	if strings.TrimSpace(location) == "" {
		return errors.New("Location is required.")
	}
	if age < 18 || age > 99 {
		return errors.New("Age must be between 18 and 99.")
	}
	minImages := minImagesCreate
	if adminEdit {
		minImages = minImagesEdit
	}
	if imageCount < minImages {
		if adminEdit {
			return errors.New("At least 1 image is required.")
		}
		return errors.New("At least 4 images are required.")
	}
	if imageCount > maxImages {
		return errors.New("No more than 20 images are allowed.")
	}
	return nil
}

// ownerFilter matches the single non-deleted listing an account may own in a
// category; submissions upsert on it, so the same owner always lands on the
// same document.
func ownerFilter(userID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "isDeleted": bson.M{"$ne": true}}
}

// anonOwnerFilter is the sessionless-flow equivalent: the document's own
// email identifies the owner.
func anonOwnerFilter(email string) bson.M {
	return bson.M{"email": email, "isDeleted": bson.M{"$ne": true}}
}

// visibleFilter matches documents the public may see: not soft-deleted and
// approved. A missing approvalStatus counts as approved (legacy documents).
func visibleFilter() bson.M {
	return bson.M{
		"isDeleted":      bson.M{"$ne": true},
		"approvalStatus": bson.M{"$in": []interface{}{models.StatusApproved, nil, ""}},
	}
}

func mutableListingFields(req *ListingRequest) bson.M {
	return bson.M{
		"name":           strings.TrimSpace(req.Name),
		"age":            req.Age,
		"location":       strings.TrimSpace(req.Location),
		"images":         req.Images,
		"imagePublicIds": req.ImagePublicIDs,
		"gender":         req.Gender,
		"formFields":     models.SanitizeFormFields(req.FormFields),
		"updatedAt":      time.Now().Unix(),
	}
}

// SubmitListing handles create-or-update for account-owned listings. The
// owner always lands on the same document: at most one non-deleted listing
// exists per user per category.
func SubmitListing(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
			return
		}

		var req ListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
			return
		}

		if err := validateListing(req.Name, req.Location, req.Age, len(req.Images), false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		coll := database.ListingCollection(category)

		var existing models.Listing
		err = coll.FindOne(ctx, ownerFilter(userID)).Decode(&existing)
		if err == nil {
			// Self-service edits do not reset approvalStatus.
			if _, err := coll.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{"$set": mutableListingFields(&req)}); err != nil {
				internalError(c, "SubmitListing", err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": existing.ID.Hex(), "message": "Ad updated successfully"})
			return
		}
		if err != mongo.ErrNoDocuments {
			internalError(c, "SubmitListing", err)
			return
		}

		listing := models.Listing{
			ID:             primitive.NewObjectID(),
			UserID:         &userID,
			Name:           strings.TrimSpace(req.Name),
			Age:            req.Age,
			Location:       strings.TrimSpace(req.Location),
			Images:         req.Images,
			ImagePublicIDs: req.ImagePublicIDs,
			Gender:         req.Gender,
			FormFields:     models.SanitizeFormFields(req.FormFields),
			CreatedAt:      time.Now().Unix(),
		}

		if _, err := coll.InsertOne(ctx, listing); err != nil {
			internalError(c, "SubmitListing", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": listing.ID.Hex(), "message": "Ad created successfully"})
	}
}

// SubmitAnonymousListing handles the sessionless flow: the document carries
// its own email and bcrypt hash and every save re-authenticates with them.
// Wrong password and unknown email return the same message so accounts
// cannot be enumerated.
func SubmitAnonymousListing(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
			return
		}

		if err := validateListing(req.Name, req.Location, req.Age, len(req.Images), false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext()
		defer cancel()

		coll := database.ListingCollection(category)

		var existing models.Listing
		err := coll.FindOne(ctx, anonOwnerFilter(email)).Decode(&existing)
		if err == nil {
			if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(req.Password)) != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			if _, err := coll.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{"$set": mutableListingFields(&req)}); err != nil {
				internalError(c, "SubmitAnonymousListing", err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": existing.ID.Hex(), "message": "Ad updated successfully"})
			return
		}
		if err != mongo.ErrNoDocuments {
			internalError(c, "SubmitAnonymousListing", err)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			internalError(c, "SubmitAnonymousListing", err)
			return
		}

		listing := models.Listing{
			ID:             primitive.NewObjectID(),
			Name:           strings.TrimSpace(req.Name),
			Age:            req.Age,
			Location:       strings.TrimSpace(req.Location),
			Images:         req.Images,
			ImagePublicIDs: req.ImagePublicIDs,
			Gender:         req.Gender,
			Email:          email,
			PasswordHash:   string(hashed),
			FormFields:     models.SanitizeFormFields(req.FormFields),
			CreatedAt:      time.Now().Unix(),
		}

		if _, err := coll.InsertOne(ctx, listing); err != nil {
			internalError(c, "SubmitAnonymousListing", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": listing.ID.Hex(), "message": "Ad created successfully"})
	}
}

// ListListings is the public browse endpoint: approved, non-deleted, newest
// first, capped at 50. Credentials and contact email never leave the server.
func ListListings(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		coll := database.ListingCollection(category)

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(publicListLimit).
			SetProjection(bson.M{"passwordHash": 0, "email": 0, "reviewedBy": 0})

		cursor, err := coll.Find(ctx, visibleFilter(), findOptions)
		if err != nil {
			internalError(c, "ListListings", err)
			return
		}
		defer cursor.Close(ctx)

		var listings []models.Listing
		if err := cursor.All(ctx, &listings); err != nil {
			internalError(c, "ListListings", err)
			return
		}

		if listings == nil {
			listings = []models.Listing{}
		}
		c.JSON(http.StatusOK, listings)
	}
}

// MyListing is the owner self-view: unlike the public list it includes
// pending and rejected documents so the owner can see moderation state.
func MyListing(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	category := c.Query("type")
	if category != models.CategoryGirls && category != models.CategoryTrans {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing type"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	var listing models.Listing
	err = database.ListingCollection(category).FindOne(ctx, ownerFilter(userID)).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "No ad found"})
		return
	}
	if err != nil {
		internalError(c, "MyListing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing":        listing,
		"approvalStatus": listing.EffectiveStatus(),
	})
}

// ProfileLookup reloads a saved form for the sessionless flow: it finds the
// caller's listing across both categories by email+password. The failure
// message is uniform across every branch.
func ProfileLookup(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := requestContext()
	defer cancel()

	for _, category := range []string{models.CategoryGirls, models.CategoryTrans} {
		var listing models.Listing
		err := database.ListingCollection(category).FindOne(ctx, anonOwnerFilter(email)).Decode(&listing)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			internalError(c, "ProfileLookup", err)
			return
		}
		if listing.PasswordHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(listing.PasswordHash), []byte(req.Password)) != nil {
			continue
		}
		c.JSON(http.StatusOK, gin.H{
			"type":    category,
			"listing": listing,
		})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
}
