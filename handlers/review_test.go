package handlers

import (
	"reflect"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateReviewInput(t *testing.T) {
	validID := primitive.NewObjectID().Hex()

	testCases := []struct {
		name        string
		profileID   string
		profileType string
		rating      int
		comment     string
		wantErr     string
	}{
		{"valid girls review", validID, "girls", 5, "great", ""},
		{"valid trans review", validID, "trans", 1, "", ""},
		{"valid profiles review", validID, "profiles", 3, "ok", ""},
		{"malformed id", "not-a-hex-id", "girls", 5, "", "Invalid profile ID."},
		{"empty id", "", "girls", 5, "", "Invalid profile ID."},
		{"truncated hex id", validID[:10], "girls", 5, "", "Invalid profile ID."},
		{"unknown type", validID, "escorts", 3, "", "Invalid profile type."},
		{"rating zero", validID, "girls", 0, "", "Rating must be between 1 and 5."},
		{"rating six", validID, "girls", 6, "", "Rating must be between 1 and 5."},
		{"negative rating", validID, "girls", -1, "", "Rating must be between 1 and 5."},
		{"comment at limit", validID, "girls", 4, strings.Repeat("a", 500), ""},
		{"comment over limit", validID, "girls", 4, strings.Repeat("a", 501), "Comment must be 500 characters or less."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateReviewInput(tc.profileID, tc.profileType, tc.rating, tc.comment)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %q", err.Error())
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tc.wantErr)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("expected %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestReviewUpsertKeyIdentity(t *testing.T) {
	userID := primitive.NewObjectID()
	profileID := primitive.NewObjectID().Hex()

	first := reviewUpsertKey(profileID, "girls", userID)
	second := reviewUpsertKey(profileID, "girls", userID)
	if !reflect.DeepEqual(first, second) {
		t.Error("the same (user, target) pair must address the same document")
	}

	otherUser := reviewUpsertKey(profileID, "girls", primitive.NewObjectID())
	if reflect.DeepEqual(first, otherUser) {
		t.Error("different users must address different documents")
	}

	otherType := reviewUpsertKey(profileID, "trans", userID)
	if reflect.DeepEqual(first, otherType) {
		t.Error("the same id under a different type is a different target")
	}

	for _, key := range []string{"profileId", "profileType", "userId"} {
		if _, ok := first[key]; !ok {
			t.Errorf("upsert key missing %q", key)
		}
	}
	if len(first) != 3 {
		t.Errorf("upsert key must contain exactly the identity triple, got %#v", first)
	}
}

func TestRoundAverage(t *testing.T) {
	testCases := []struct {
		name string
		avg  float64
		want float64
	}{
		{"exact integer", 4.0, 4.0},
		{"one decimal already", 4.5, 4.5},
		{"rounds down", 4.44, 4.4},
		{"rounds up", 4.45, 4.5},
		{"third mean", 11.0 / 3.0, 3.7},
		{"zero reviews", 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := roundAverage(tc.avg); got != tc.want {
				t.Errorf("roundAverage(%v) = %v, want %v", tc.avg, got, tc.want)
			}
		})
	}
}
