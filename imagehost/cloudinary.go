package imagehost

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const destroyTimeout = 10 * time.Second

// PublicIDFromURL derives the Cloudinary public id from a delivery URL:
// everything after the /upload/ segment, minus an optional version segment
// (v123456/) and the file extension. Returns "" for URLs that are not
// Cloudinary delivery URLs.
func PublicIDFromURL(rawURL string) string {
	idx := strings.Index(rawURL, "/upload/")
	if idx < 0 {
		return ""
	}
	path := rawURL[idx+len("/upload/"):]

	// strip transformation/version segments like "c_limit,w_800/" or "v1712345/"
	for {
		slash := strings.Index(path, "/")
		if slash < 0 {
			break
		}
		segment := path[:slash]
		if isVersionSegment(segment) || strings.Contains(segment, ",") {
			path = path[slash+1:]
			continue
		}
		break
	}

	if dot := strings.LastIndex(path, "."); dot > strings.LastIndex(path, "/") {
		path = path[:dot]
	}
	if path == "" {
		return ""
	}
	return path
}

func isVersionSegment(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, r := range segment[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Destroy deletes one asset from Cloudinary.
func Destroy(ctx context.Context, publicID string) error {
	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return err
	}
	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// Cleanup best-effort deletes every asset referenced by a removed listing:
// the stored public ids plus ids derived from image URLs. Failures are
// logged and swallowed; there is no retry, an orphaned remote asset is
// acceptable.
func Cleanup(publicIDs []string, imageURLs []string) {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(publicIDs)+len(imageURLs))
	for _, id := range publicIDs {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, u := range imageURLs {
		if id := PublicIDFromURL(u); id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		ctx, cancel := context.WithTimeout(context.Background(), destroyTimeout)
		if err := Destroy(ctx, id); err != nil {
			log.Printf("[ImageCleanup] failed to delete %s: %v", id, err)
		}
		cancel()
	}
}
