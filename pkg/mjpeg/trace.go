package mjpeg

import (
	"fmt"
	"io"
)

// Tracer renders each marker event as one line of text, in stream
// order. A blank line separates successive images, detected by repeated
// SOI markers, and Finish prints the image count after the stream has
// been scanned successfully.
type Tracer struct {
	w      io.Writer
	images int64
}

// NewTracer returns a Tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// OnMarker prints one line per marker unit.
func (t *Tracer) OnMarker(m Marker, offset int64, length int) error {
	if m == SOI {
		if t.images > 0 {
			if _, err := fmt.Fprintln(t.w); err != nil {
				return err
			}
		}
		t.images++
	}
	_, err := fmt.Fprintf(t.w, "%-5s offset=%d length=%d\n", m.Name(), offset, length)
	return err
}

// OnImmediate prints one line per immediate marker found inside
// compressed scan data.
func (t *Tracer) OnImmediate(m Marker) error {
	_, err := fmt.Fprintf(t.w, "%-5s immediate\n", m.Name())
	return err
}

// Images returns the number of SOI markers seen so far.
func (t *Tracer) Images() int64 { return t.images }

// Finish prints the trailing image count. Call it only after the scan
// has succeeded.
func (t *Tracer) Finish() error {
	_, err := fmt.Fprintf(t.w, "\n%d image(s)\n", t.images)
	return err
}
