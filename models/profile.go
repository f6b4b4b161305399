package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelfProfile is the self-service profile, one per user, in the "profiles"
// collection. Distinct from the listing flow.
type SelfProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	FullName   string             `bson:"fullName" json:"fullName"`
	Age        int                `bson:"age" json:"age"`
	Location   string             `bson:"location" json:"location"`
	Bio        string             `bson:"bio" json:"bio"`
	Interests  []string           `bson:"interests" json:"interests"`
	IsComplete bool               `bson:"isComplete" json:"isComplete"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt  int64              `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfileImage is an ordered child record; updates replace the whole set.
type ProfileImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID primitive.ObjectID `bson:"profileId" json:"profileId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	URL       string             `bson:"url" json:"url"`
	Order     int                `bson:"order" json:"order"`
}
