package handlers

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestStaleIdentity(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"user document gone", mongo.ErrNoDocuments, true},
		{"wrapped no-documents", fmt.Errorf("decode user: %w", mongo.ErrNoDocuments), true},
		{"database failure", errors.New("connection reset"), false},
		{"nil error", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := staleIdentity(tc.err); got != tc.want {
				t.Errorf("staleIdentity(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
