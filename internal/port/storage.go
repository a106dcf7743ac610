package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload. Location is the
// store-reported URL of the object, when the store reports one.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage abstracts cloud object storage operations. Implementations
// must be safe for concurrent use; one client is shared by all requests.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	List(ctx context.Context, bucket string) ([]ObjectInfo, error)
	BucketExists(ctx context.Context, bucket string) error
}
