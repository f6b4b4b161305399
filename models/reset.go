package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordResetToken stores the sha256 of the raw token, never the token
// itself. At most one unused token exists per user; issuing a new one deletes
// the older unused ones first.
type PasswordResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Email     string             `bson:"email" json:"email"`
	TokenHash string             `bson:"tokenHash" json:"-"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	UsedAt    *time.Time         `bson:"usedAt,omitempty" json:"usedAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
