package fakegcs

import "errors"

var (
	ErrInvalidBucketName = errors.New("bucket name must not be empty")
	ErrInvalidBlobName   = errors.New("blob name must not be empty")
	ErrInvalidMode       = errors.New("invalid open mode")
	ErrClosed            = errors.New("stream already closed")
)
