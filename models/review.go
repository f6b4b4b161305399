package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is one user's rating of a listing or self-service profile. At most
// one active review exists per (userId, profileId, profileType); writes
// upsert on that triple.
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID   string             `bson:"profileId" json:"profileId"`
	ProfileType string             `bson:"profileType" json:"profileType"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	UserName    string             `bson:"userName" json:"userName"`
	UserEmail   string             `bson:"userEmail" json:"-"`
	Rating      int                `bson:"rating" json:"rating"`
	Comment     string             `bson:"comment" json:"comment"`
	IsDeleted   bool               `bson:"isDeleted,omitempty" json:"-"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
