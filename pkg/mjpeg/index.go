package mjpeg

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// IndexExt is the suffix appended to an input path to name its frame
// index file.
const IndexExt = ".index"

// Indexer records the byte offset of every SOI marker into a binary
// frame index: a 64-bit big-endian frame count followed by one 64-bit
// big-endian offset per frame, strictly ascending, each pointing at the
// 0xFF byte that leads the SOI. The count is written as a zero
// placeholder up front and patched by Finish once the full pass has
// completed.
type Indexer struct {
	w      io.WriteSeeker
	frames int64
}

// NewIndexer writes the placeholder count to w and returns the indexer.
func NewIndexer(w io.WriteSeeker) (*Indexer, error) {
	ix := &Indexer{w: w}
	if err := ix.writeInt64(0); err != nil {
		return nil, err
	}
	return ix, nil
}

// OnMarker records SOI offsets; every other marker is ignored.
func (ix *Indexer) OnMarker(m Marker, offset int64, length int) error {
	if m != SOI {
		return nil
	}
	if ix.frames == math.MaxInt64 {
		return ErrTooManyFrames
	}
	ix.frames++
	return ix.writeInt64(offset)
}

// OnImmediate is a no-op; immediate markers carry no frame boundary.
func (ix *Indexer) OnImmediate(Marker) error { return nil }

// Frames returns the number of SOI markers recorded so far.
func (ix *Indexer) Frames() int64 { return ix.frames }

// Finish patches the true frame count over the placeholder at the start
// of the index. At least one frame must have been recorded.
func (ix *Indexer) Finish() error {
	if ix.frames < 1 {
		return ErrNoFrames
	}
	if _, err := ix.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind index: %w", err)
	}
	return ix.writeInt64(ix.frames)
}

func (ix *Indexer) writeInt64(v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	if _, err := ix.w.Write(buf[:]); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
