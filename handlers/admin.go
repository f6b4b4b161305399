package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/database"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/imagehost"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// statusForAction maps a moderation action to the resulting approval status.
// Every transition between pending/approved/rejected is allowed, so the
// current status does not constrain the action.
func statusForAction(action string) (string, error) {
	switch action {
	case "accept":
		return models.StatusApproved, nil
	case "reject":
		return models.StatusRejected, nil
	default:
		return "", errors.New("Action must be accept or reject.")
	}
}

func listingCategory(c *gin.Context) (string, bool) {
	category := c.Query("type")
	if category != models.CategoryGirls && category != models.CategoryTrans {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing type"})
		return "", false
	}
	return category, true
}

// ModerateListing transitions a listing's approval status. Sets reviewedAt
// and reviewedBy to the acting admin; nothing is mutated on any failure path.
func ModerateListing(c *gin.Context) {
	category, ok := listingCategory(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required."})
		return
	}

	status, err := statusForAction(req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	now := time.Now()
	result := database.ListingCollection(category).FindOneAndUpdate(ctx,
		bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{
			"approvalStatus": status,
			"reviewedAt":     now,
			"reviewedBy":     c.GetString("email"),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var listing models.Listing
	if err := result.Decode(&listing); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		internalError(c, "ModerateListing", err)
		return
	}

	log.Printf("[ModerateListing] %s/%s -> %s by %s", category, id.Hex(), status, c.GetString("email"))

	c.JSON(http.StatusOK, gin.H{
		"id":             listing.ID.Hex(),
		"approvalStatus": listing.ApprovalStatus,
		"reviewedAt":     now,
	})
}

// AdminListListings is the moderation queue: unlike the public list it can
// show pending and rejected documents, filtered by ?status=.
func AdminListListings(c *gin.Context) {
	category, ok := listingCategory(c)
	if !ok {
		return
	}

	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	switch status := c.Query("status"); status {
	case "":
	case models.StatusPending, models.StatusRejected:
		filter["approvalStatus"] = status
	case models.StatusApproved:
		filter["approvalStatus"] = bson.M{"$in": []interface{}{models.StatusApproved, nil, ""}}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"passwordHash": 0})

	cursor, err := database.ListingCollection(category).Find(ctx, filter, findOptions)
	if err != nil {
		internalError(c, "AdminListListings", err)
		return
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		internalError(c, "AdminListListings", err)
		return
	}

	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, listings)
}

// AdminEditListing is the admin full edit. Admins may trim a listing down to
// a single image, unlike self-service creation which requires four.
func AdminEditListing(c *gin.Context) {
	category, ok := listingCategory(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if err := validateListing(req.Name, req.Location, req.Age, len(req.Images), true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := database.ListingCollection(category).UpdateOne(ctx,
		bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}},
		bson.M{"$set": mutableListingFields(&req)},
	)
	if err != nil {
		internalError(c, "AdminEditListing", err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.Hex(), "message": "Profile updated successfully"})
}

// DeleteListing removes the document synchronously, then fires best-effort
// deletes at the image host for every stored or derived public id. A failed
// image delete leaves an orphaned remote asset; there is no retry.
func DeleteListing(c *gin.Context) {
	category, ok := listingCategory(c)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	coll := database.ListingCollection(category)

	// Capture image references before the document disappears.
	var listing models.Listing
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		internalError(c, "DeleteListing", err)
		return
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		internalError(c, "DeleteListing", err)
		return
	}

	log.Printf("[DeleteListing] %s/%s deleted by %s", category, id.Hex(), c.GetString("email"))

	go imagehost.Cleanup(listing.ImagePublicIDs, listing.Images)

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}
