package pixmap

import "github.com/pkg/errors"

var (
	// ErrFormat is returned for a bad magic line or malformed dimension/depth tokens.
	ErrFormat = errors.New("ppm: invalid format")
	// ErrTruncatedHeader is returned when the stream ends before the header is complete.
	ErrTruncatedHeader = errors.New("ppm: truncated header")
	// ErrUnsupportedFormat is returned for channel depths other than 255 and oversized images.
	ErrUnsupportedFormat = errors.New("ppm: unsupported format")
	// ErrTruncatedPayload is only returned by strict decoding.
	ErrTruncatedPayload = errors.New("ppm: truncated payload")
)
