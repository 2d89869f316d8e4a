package mjpeg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Handler receives the events produced by a scan. OnMarker fires once
// per top-level marker unit, including SOS; OnImmediate fires for every
// immediate marker found inside compressed scan data. A non-nil return
// from either aborts the scan with that error.
type Handler interface {
	OnMarker(m Marker, offset int64, length int) error
	OnImmediate(m Marker) error
}

// Scanner walks a JPEG or raw Motion-JPEG stream one marker unit at a
// time, handing each unit to its Handler. It performs no decoding: the
// entire pass is a single forward read with one two-byte pushback per
// scan-data termination.
type Scanner struct {
	src *Source
	h   Handler

	// eoiRead is set after an EOI unit and cleared by any other unit;
	// end of stream is only legitimate while it is set.
	eoiRead bool
}

// NewScanner returns a Scanner reading from r and reporting to h.
func NewScanner(r io.Reader, h Handler) *Scanner {
	return &Scanner{src: NewSource(r), h: h}
}

// Scan reads every marker unit in the stream from r and reports each
// one to h. It returns nil only when the stream ends at a marker
// boundary directly after an EOI marker.
func Scan(r io.Reader, h Handler) error {
	return NewScanner(r, h).Run()
}

// Run drives the scan to completion or to its first fatal error.
func (sc *Scanner) Run() error {
	for {
		done, err := sc.next()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// next reads one complete marker unit. done is true when the stream
// ended legitimately, i.e. at a unit boundary following an EOI unit.
func (sc *Scanner) next() (done bool, err error) {
	b, err := sc.src.ReadByte()
	if err == io.EOF {
		if sc.eoiRead {
			return true, nil
		}
		return false, ErrMissingEOI
	}
	if err != nil {
		return false, err
	}
	if b != Premark {
		return false, ErrMissingPremark
	}

	m, err := sc.marker()
	if err != nil {
		return false, err
	}
	// Offset of the 0xFF byte directly before the marker byte. With a
	// run of fill bytes this is the last fill byte of the run.
	offset := sc.src.Offset() - 2

	length := 0
	if !m.StandAlone() {
		if length, err = sc.length(); err != nil {
			return false, err
		}
	}

	slog.Debug("marker",
		slog.String("marker", m.Name()),
		slog.Int64("offset", offset),
		slog.Int("length", length))
	if err := sc.h.OnMarker(m, offset, length); err != nil {
		return false, err
	}

	if length > 0 {
		if err := sc.src.Skip(int64(length)); err != nil {
			if errors.Is(err, io.EOF) {
				return false, ErrTruncatedPayload
			}
			return false, err
		}
	}

	if m == SOS {
		if err := sc.scanData(); err != nil {
			return false, err
		}
	}

	sc.eoiRead = m == EOI
	return false, nil
}

// marker collapses a run of 0xFF fill bytes down to the marker byte
// that ends it. The leading 0xFF has already been consumed.
func (sc *Scanner) marker() (Marker, error) {
	for {
		b, err := sc.src.ReadByte()
		if err == io.EOF {
			return 0, ErrMissingMarker
		}
		if err != nil {
			return 0, err
		}
		if b != Premark {
			return Marker(b), nil
		}
	}
}

// length reads the big-endian 16-bit length field of a length-prefixed
// marker and returns the payload length, i.e. the field value minus the
// two bytes of the field itself.
func (sc *Scanner) length() (int, error) {
	hi, err := sc.src.ReadByte()
	if err == io.EOF {
		return 0, ErrMissingLength
	}
	if err != nil {
		return 0, err
	}
	lo, err := sc.src.ReadByte()
	if err == io.EOF {
		return 0, ErrPartialLength
	}
	if err != nil {
		return 0, err
	}
	n := int(hi)<<8 | int(lo)
	if n < 2 {
		return 0, ErrShortLength
	}
	return n - 2, nil
}

// scanData consumes entropy-coded bytes following an SOS payload until
// the marker that terminates the scan, reporting each immediate marker
// along the way. On return the source is positioned at the terminating
// marker's pre-marker byte, ready for the top-level loop.
func (sc *Scanner) scanData() error {
	for {
		b, err := sc.src.ReadByte()
		if err == io.EOF {
			return ErrTruncatedScan
		}
		if err != nil {
			return err
		}
		if b != Premark {
			continue
		}

		// Collapse the pre-marker run down to the candidate byte.
		for b == Premark {
			if b, err = sc.src.ReadByte(); err != nil {
				if err == io.EOF {
					return ErrTruncatedScan
				}
				return err
			}
		}

		if b == 0 {
			// Escape for a literal 0xFF inside compressed data.
			continue
		}

		m := Marker(b)
		if !m.Immediate() {
			// A real marker ends the scan. Give back its pre-marker
			// byte and the marker byte; this is the only backward
			// cursor movement in the whole engine.
			sc.src.Unread(Premark, b)
			return nil
		}

		slog.Debug("immediate", slog.String("marker", m.Name()))
		if err := sc.h.OnImmediate(m); err != nil {
			return err
		}
		if m == DNL {
			// DNL carries a payload we do not parse as an immediate.
			return fmt.Errorf("immediate %s: %w", m.Name(), ErrUnsupportedDNL)
		}
	}
}
