package handlers

import "testing"

func TestProfileComplete(t *testing.T) {
	testCases := []struct {
		name       string
		fullName   string
		age        int
		location   string
		imageCount int
		want       bool
	}{
		{"complete", "Ana Garcia", 25, "Barcelona", 3, true},
		{"single image is enough", "Ana", 18, "Madrid", 1, true},
		{"missing name", "", 25, "Barcelona", 3, false},
		{"whitespace name", "   ", 25, "Barcelona", 3, false},
		{"underage", "Ana", 17, "Barcelona", 3, false},
		{"zero age", "Ana", 0, "Barcelona", 3, false},
		{"missing location", "Ana", 25, "", 3, false},
		{"no images", "Ana", 25, "Barcelona", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := profileComplete(tc.fullName, tc.age, tc.location, tc.imageCount)
			if got != tc.want {
				t.Errorf("profileComplete(%q, %d, %q, %d) = %v, want %v",
					tc.fullName, tc.age, tc.location, tc.imageCount, got, tc.want)
			}
		})
	}
}
