package handlers

import (
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

type SelfProfileRequest struct {
	FullName  string   `json:"fullName"`
	Age       int      `json:"age"`
	Location  string   `json:"location"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
	Images    []string `json:"images"`
}

// profileComplete decides whether a self-service profile is publicly
// visible. Completion stands in for moderation on this flow.
func profileComplete(fullName string, age int, location string, imageCount int) bool {
	return strings.TrimSpace(fullName) != "" &&
		age >= 18 &&
		strings.TrimSpace(location) != "" &&
		imageCount > 0
}

func loadProfileImages(c *gin.Context, profileID primitive.ObjectID) ([]models.ProfileImage, bool) {
	ctx, cancel := requestContext()
	defer cancel()

	cursor, err := database.ProfileImages.Find(ctx,
		bson.M{"profileId": profileID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}),
	)
	if err != nil {
		internalError(c, "ProfileImages", err)
		return nil, false
	}
	defer cursor.Close(ctx)

	var images []models.ProfileImage
	if err := cursor.All(ctx, &images); err != nil {
		internalError(c, "ProfileImages", err)
		return nil, false
	}
	if images == nil {
		images = []models.ProfileImage{}
	}
	return images, true
}

func GetMyProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	var profile models.SelfProfile
	err = database.Profiles.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		internalError(c, "GetMyProfile", err)
		return
	}

	images, ok := loadProfileImages(c, profile.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "images": images})
}

// UpdateMyProfile upserts the caller's profile and replaces the image set
// wholesale: delete-all then ordered re-insert, no diffing.
func UpdateMyProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SelfProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if strings.TrimSpace(req.FullName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Full name is required."})
		return
	}
	if req.Age != 0 && (req.Age < 18 || req.Age > 99) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Age must be between 18 and 99."})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	now := time.Now().Unix()
	isComplete := profileComplete(req.FullName, req.Age, req.Location, len(req.Images))

	update := bson.M{
		"$set": bson.M{
			"fullName":   strings.TrimSpace(req.FullName),
			"age":        req.Age,
			"location":   strings.TrimSpace(req.Location),
			"bio":        strings.TrimSpace(req.Bio),
			"interests":  req.Interests,
			"isComplete": isComplete,
			"updatedAt":  now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	result := database.Profiles.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var profile models.SelfProfile
	if err := result.Decode(&profile); err != nil {
		internalError(c, "UpdateMyProfile", err)
		return
	}

	// Full replace of the ordered image set.
	if _, err := database.ProfileImages.DeleteMany(ctx, bson.M{"profileId": profile.ID}); err != nil {
		internalError(c, "UpdateMyProfile", err)
		return
	}
	if len(req.Images) > 0 {
		docs := make([]interface{}, 0, len(req.Images))
		for i, url := range req.Images {
			docs = append(docs, models.ProfileImage{
				ID:        primitive.NewObjectID(),
				ProfileID: profile.ID,
				UserID:    userID,
				URL:       url,
				Order:     i,
			})
		}
		if _, err := database.ProfileImages.InsertMany(ctx, docs); err != nil {
			internalError(c, "UpdateMyProfile", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "isComplete": isComplete})
}

// GetPublicProfile serves a completed profile to anonymous visitors.
func GetPublicProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	var profile models.SelfProfile
	err = database.Profiles.FindOne(ctx, bson.M{"_id": id, "isComplete": true}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		internalError(c, "GetPublicProfile", err)
		return
	}

	images, ok := loadProfileImages(c, profile.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "images": images})
}
