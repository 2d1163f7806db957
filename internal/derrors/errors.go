package derrors

import (
	"errors"
)

var (
	ErrSizeLimitReached = errors.New("size limit reached")
	ErrNotFound         = errors.New("manifest url not found")
	ErrNotManifest      = errors.New("not a dash manifest")
)
