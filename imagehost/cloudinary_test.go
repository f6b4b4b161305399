package imagehost

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{
			"standard delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/barcelona/listings/abc123.jpg",
			"barcelona/listings/abc123",
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/barcelona/listings/abc123.png",
			"barcelona/listings/abc123",
		},
		{
			"transformation segment",
			"https://res.cloudinary.com/demo/image/upload/c_limit,w_800/v99/folder/pic.webp",
			"folder/pic",
		},
		{
			"no extension",
			"https://res.cloudinary.com/demo/image/upload/v1/folder/pic",
			"folder/pic",
		},
		{
			"not a cloudinary url",
			"https://example.com/images/pic.jpg",
			"",
		},
		{
			"empty string",
			"",
			"",
		},
		{
			"upload segment but nothing after",
			"https://res.cloudinary.com/demo/image/upload/",
			"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PublicIDFromURL(tc.url); got != tc.want {
				t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestIsVersionSegment(t *testing.T) {
	testCases := []struct {
		segment string
		want    bool
	}{
		{"v1712345678", true},
		{"v1", true},
		{"v", false},
		{"version", false},
		{"folder", false},
		{"v12a", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := isVersionSegment(tc.segment); got != tc.want {
			t.Errorf("isVersionSegment(%q) = %v, want %v", tc.segment, got, tc.want)
		}
	}
}
