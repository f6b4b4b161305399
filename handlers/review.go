package handlers

import (
	"context"
	"errors"
	"math"
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
)

const (
	maxCommentLength = 500
	recentReviews    = 50
)

func validateReviewInput(profileID, profileType string, rating int, comment string) error {
	if _, err := primitive.ObjectIDFromHex(profileID); err != nil {
		return errors.New("Invalid profile ID.")
	}
	switch profileType {
	case models.CategoryGirls, models.CategoryTrans, "profiles":
	default:
		return errors.New("Invalid profile type.")
	}
	if rating < 1 || rating > 5 {
		return errors.New("Rating must be between 1 and 5.")
	}
	if len(comment) > maxCommentLength {
		return errors.New("Comment must be 500 characters or less.")
	}
	return nil
}

// roundAverage rounds a mean rating to one decimal place.
func roundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// reviewUpsertKey is the identity of a user's review of one target. Writes
// upsert on it, so a second submission from the same user updates the same
// document instead of adding a row.
func reviewUpsertKey(profileID, profileType string, userID primitive.ObjectID) bson.M {
	return bson.M{
		"profileId":   profileID,
		"profileType": profileType,
		"userId":      userID,
	}
}

// reviewTargetVisible reports whether the review target may receive reviews:
// listings must be publicly visible, self-service profiles must be complete.
// The id has already been validated by the handler.
func reviewTargetVisible(ctx context.Context, profileID, profileType string) (bool, error) {
	id, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return false, nil
	}

	var filter bson.M
	var coll *mongo.Collection
	if profileType == "profiles" {
		coll = database.Profiles
		filter = bson.M{"_id": id, "isComplete": true}
	} else {
		coll = database.ListingCollection(profileType)
		filter = visibleFilter()
		filter["_id"] = id
	}

	err = coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// reviewSummary recomputes the aggregate fresh on every read: average over
// all active reviews, total count, the 50 newest, and the caller's own
// review when an identity is supplied.
func reviewSummary(ctx context.Context, profileID, profileType, callerID string) (gin.H, error) {
	activeFilter := bson.M{
		"profileId":   profileID,
		"profileType": profileType,
		"isDeleted":   bson.M{"$ne": true},
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: activeFilter}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := database.ProfileReviews.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agg struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&agg); err != nil {
			return nil, err
		}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(recentReviews)

	listCursor, err := database.ProfileReviews.Find(ctx, activeFilter, findOptions)
	if err != nil {
		return nil, err
	}
	defer listCursor.Close(ctx)

	var reviews []models.Review
	if err := listCursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	summary := gin.H{
		"averageRating": roundAverage(agg.Avg),
		"totalReviews":  agg.Count,
		"reviews":       reviews,
	}

	if callerID != "" {
		if userID, err := primitive.ObjectIDFromHex(callerID); err == nil {
			myFilter := reviewUpsertKey(profileID, profileType, userID)
			myFilter["isDeleted"] = bson.M{"$ne": true}
			var mine models.Review
			if err := database.ProfileReviews.FindOne(ctx, myFilter).Decode(&mine); err == nil {
				summary["myReview"] = mine
			}
		}
	}

	return summary, nil
}

type ReviewRequest struct {
	ProfileID   string `json:"profileId" binding:"required"`
	ProfileType string `json:"profileType" binding:"required"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// SubmitReview upserts the caller's review of a target: one active review
// per (user, target) pair, keyed on (profileId, profileType, userId).
func SubmitReview(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile ID and type are required."})
		return
	}

	if err := validateReviewInput(req.ProfileID, req.ProfileType, req.Rating, req.Comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	var reviewer models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&reviewer); err != nil {
		if staleIdentity(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		internalError(c, "SubmitReview", err)
		return
	}

	visible, err := reviewTargetVisible(ctx, req.ProfileID, req.ProfileType)
	if err != nil {
		internalError(c, "SubmitReview", err)
		return
	}
	if !visible {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	now := time.Now().Unix()
	filter := reviewUpsertKey(req.ProfileID, req.ProfileType, userID)
	update := bson.M{
		"$set": bson.M{
			"rating":    req.Rating,
			"comment":   strings.TrimSpace(req.Comment),
			"userName":  reviewer.Name,
			"userEmail": reviewer.Email,
			"isDeleted": false,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	if _, err := database.ProfileReviews.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		internalError(c, "SubmitReview", err)
		return
	}

	summary, err := reviewSummary(ctx, req.ProfileID, req.ProfileType, userID.Hex())
	if err != nil {
		internalError(c, "SubmitReview", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetReviews returns the aggregate without requiring authentication;
// myReview is included only when a valid token identifies the caller.
func GetReviews(c *gin.Context) {
	profileID := c.Query("profileId")
	profileType := c.Query("profileType")

	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile ID is required."})
		return
	}
	if _, err := primitive.ObjectIDFromHex(profileID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID."})
		return
	}
	switch profileType {
	case models.CategoryGirls, models.CategoryTrans, "profiles":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile type."})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	summary, err := reviewSummary(ctx, profileID, profileType, c.GetString("userId"))
	if err != nil {
		internalError(c, "GetReviews", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
