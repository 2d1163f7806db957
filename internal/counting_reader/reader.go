package counting_reader

import (
	"io"

	"mediafetcher/internal/derrors"
)

// CountingReader caps how much may be read from the wrapped body. Manifest
// documents are small; anything past the limit means the url does not
// point at one.
type CountingReader struct {
	io.ReadCloser

	limit int64
	read  int64
}

func NewCountingReader(reader io.ReadCloser, limit int64) *CountingReader {
	return &CountingReader{
		ReadCloser: reader,
		limit:      limit,
	}
}

func (r *CountingReader) Read(p []byte) (n int, err error) {
	n, err = r.ReadCloser.Read(p)
	if err != nil {
		return
	}
	r.read += int64(n)

	if r.limit > 0 && r.read > r.limit {
		err = derrors.ErrSizeLimitReached
		return
	}

	return n, err
}

func (r *CountingReader) BytesRead() int64 {
	return r.read
}

func (r *CountingReader) Close() (err error) {
	return r.ReadCloser.Close()
}
