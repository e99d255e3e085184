package entity

import "fmt"

// AssetLocation points at the remote storage bucket holding placeholder images.
type AssetLocation struct {
	Domain   string // Host (and optional port), e.g. "assets.example.com"
	BucketID string
	Project  string
}

// FileViewURL builds the view URL of a file stored in the bucket.
// Pure string interpolation: values are inserted as-is.
func (l AssetLocation) FileViewURL(fileID string) string {
	return fmt.Sprintf(
		"http://%s/v1/storage/buckets/%s/files/%s/view?project=%s&mode=admin",
		l.Domain, l.BucketID, fileID, l.Project,
	)
}
