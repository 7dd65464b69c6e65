package storage

import "io"

// ObjectStorage is the blob store used for profile pictures.
type ObjectStorage interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
	PublicURL(key string) string
}
