package ports

import "context"

// ImageUpload is a memory-buffered file received with a multipart request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageUploader stores an image in the external blob store and returns its
// public URL. The upload must complete before the owning entity is persisted.
type ImageUploader interface {
	Upload(ctx context.Context, folder string, img ImageUpload) (string, error)
}
