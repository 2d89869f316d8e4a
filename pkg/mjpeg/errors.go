package mjpeg

import "errors"

// Framing and protocol errors. A scan that fails with anything other
// than one of these sentinels hit an I/O fault, reported as a wrapped
// error from the underlying reader or seeker.
var (
	// ErrMissingEOI means the stream ended at a marker boundary but the
	// previous marker was not EOI.
	ErrMissingEOI = errors.New("missing EOI marker")

	// ErrMissingPremark means a marker unit did not begin with 0xFF.
	ErrMissingPremark = errors.New("missing pre-marker byte")

	// ErrMissingMarker means the stream ended inside a pre-marker run,
	// before the marker byte itself.
	ErrMissingMarker = errors.New("missing marker byte")

	// ErrMissingLength and ErrPartialLength mean the stream ended
	// before, or inside, the two-byte length field of a length-prefixed
	// marker.
	ErrMissingLength = errors.New("missing marker length")
	ErrPartialLength = errors.New("partial marker length")

	// ErrShortLength means a length field held a value below two; the
	// field counts its own two bytes, so anything smaller is invalid.
	ErrShortLength = errors.New("marker length less than two")

	// ErrTruncatedPayload means the stream ended inside a marker
	// payload.
	ErrTruncatedPayload = errors.New("truncated marker payload")

	// ErrTruncatedScan means the stream ended inside compressed scan
	// data, before the marker that terminates the scan.
	ErrTruncatedScan = errors.New("EOF in compressed stream")

	// ErrUnsupportedDNL means a DNL marker appeared inside compressed
	// scan data. DNL carries a length-prefixed payload the scan-data
	// skipper does not parse.
	ErrUnsupportedDNL = errors.New("DNL markers not supported")
)

// Frame-index errors.
var (
	// ErrTooManyFrames means the frame counter would overflow.
	ErrTooManyFrames = errors.New("too many frames")

	// ErrNoFrames means a scan completed without a single SOI marker,
	// so there is nothing to index.
	ErrNoFrames = errors.New("no frames found")
)
