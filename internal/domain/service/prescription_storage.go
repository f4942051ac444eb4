package service

import "context"

// PrescriptionStorage stores uploaded prescription images in an object store.
type PrescriptionStorage interface {
	// Upload stores the image bytes under the given object name and returns
	// the stored path. The name is expected to be unique per upload
	// ("{customerID}_{timestampMillis}.{ext}").
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)

	// Fetch reads a stored object back given the path returned by Upload.
	// It returns the image bytes and the stored content type.
	Fetch(ctx context.Context, objectPath string) ([]byte, string, error)

	// Delete removes a stored object. Called when a pharmacy rejects an
	// order; order placement never calls it (a failed insert after a
	// successful upload deliberately leaves the object behind).
	Delete(ctx context.Context, objectPath string) error
}
