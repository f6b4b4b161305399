package handlers

import (
	"testing"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"
)

func TestStatusForAction(t *testing.T) {
	testCases := []struct {
		action     string
		wantStatus string
		wantErr    bool
	}{
		{"accept", models.StatusApproved, false},
		{"reject", models.StatusRejected, false},
		{"approve", "", true},
		{"delete", "", true},
		{"", "", true},
		{"ACCEPT", "", true}, // actions are case-sensitive
	}

	for _, tc := range testCases {
		t.Run(tc.action, func(t *testing.T) {
			status, err := statusForAction(tc.action)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for action %q", tc.action)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status != tc.wantStatus {
				t.Errorf("statusForAction(%q) = %q, want %q", tc.action, status, tc.wantStatus)
			}
		})
	}
}
