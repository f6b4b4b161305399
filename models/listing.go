package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryGirls = "girls"
	CategoryTrans = "trans"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Listing is a document in the "girls" or "trans" collection. Trans listings
// can exist without an account; those documents carry their own email and
// bcrypt hash and the owner re-authenticates on every save.
type Listing struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID         *primitive.ObjectID    `bson:"userId,omitempty" json:"userId,omitempty"`
	Name           string                 `bson:"name" json:"name"`
	Age            int                    `bson:"age" json:"age"`
	Location       string                 `bson:"location" json:"location"`
	Images         []string               `bson:"images" json:"images"`
	ImagePublicIDs []string               `bson:"imagePublicIds,omitempty" json:"imagePublicIds,omitempty"`
	Gender         string                 `bson:"gender,omitempty" json:"gender,omitempty"`
	Email          string                 `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash   string                 `bson:"passwordHash,omitempty" json:"-"`
	FormFields     map[string]interface{} `bson:"formFields,omitempty" json:"formFields,omitempty"`
	ApprovalStatus string                 `bson:"approvalStatus,omitempty" json:"approvalStatus,omitempty"`
	IsDeleted      bool                   `bson:"isDeleted,omitempty" json:"-"`
	CreatedAt      int64                  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      int64                  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ReviewedAt     *time.Time             `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy     string                 `bson:"reviewedBy,omitempty" json:"-"`
}

// EffectiveStatus treats a missing approvalStatus as approved. Legacy
// documents predate moderation and were always publicly visible.
func (l *Listing) EffectiveStatus() string {
	if l.ApprovalStatus == "" {
		return StatusApproved
	}
	return l.ApprovalStatus
}

// formFieldDenylist drops credential-looking keys from the free-form bag.
var formFieldDenylist = []string{"password", "token", "secret"}

// SanitizeFormFields trims keys and values and keeps only string or
// string-list values. The bag is an intentionally schemaless extension point;
// sanitization is the only enforcement.
func SanitizeFormFields(in map[string]interface{}) map[string]interface{} {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		key := strings.TrimSpace(k)
		if key == "" || deniedFormField(key) {
			continue
		}
		switch val := v.(type) {
		case string:
			out[key] = strings.TrimSpace(val)
		case []string:
			trimmed := make([]string, 0, len(val))
			for _, s := range val {
				trimmed = append(trimmed, strings.TrimSpace(s))
			}
			out[key] = trimmed
		case []interface{}:
			trimmed := make([]string, 0, len(val))
			for _, item := range val {
				if s, ok := item.(string); ok {
					trimmed = append(trimmed, strings.TrimSpace(s))
				}
			}
			out[key] = trimmed
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func deniedFormField(key string) bool {
	lower := strings.ToLower(key)
	for _, bad := range formFieldDenylist {
		if strings.Contains(lower, bad) {
			return true
		}
	}
	return false
}
