package mjpeg

import (
	"bufio"
	"fmt"
	"io"
)

// Source is a forward-only view of a JPEG byte stream. It tracks the
// absolute offset of the read cursor and supports a bounded pushback,
// used once per scan-data termination to restore the two bytes of the
// marker that ended the scan.
//
// End of stream is always reported as io.EOF; any other failure from
// the underlying reader or seeker is an I/O fault and is returned
// wrapped. Callers decide where io.EOF is legitimate.
type Source struct {
	br   *bufio.Reader
	sk   io.Seeker // non-nil when the underlying reader can seek
	off  int64
	push []byte
}

// NewSource wraps r. When r also implements io.Seeker, payload skips
// beyond the read buffer use a real seek instead of reading through.
// A reader whose Seek fails at runtime, like a pipe-backed *os.File,
// is demoted to reading through.
func NewSource(r io.Reader) *Source {
	s := &Source{br: bufio.NewReader(r)}
	if sk, ok := r.(io.Seeker); ok {
		s.sk = sk
	}
	return s
}

// Offset returns the absolute offset of the next byte to be read. It
// equals the count of bytes consumed so far minus any pushback.
func (s *Source) Offset() int64 { return s.off }

// ReadByte returns the next byte of the stream.
func (s *Source) ReadByte() (byte, error) {
	if len(s.push) > 0 {
		b := s.push[0]
		s.push = s.push[1:]
		s.off++
		return b, nil
	}
	b, err := s.br.ReadByte()
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("read byte: %w", err)
	}
	s.off++
	return b, nil
}

// Unread pushes b back onto the stream so subsequent reads return those
// bytes, in order, before any further stream bytes. The offset moves
// back by len(b). Only bytes that were actually just read may be given
// back; the scanner never pushes more than two.
func (s *Source) Unread(b ...byte) {
	s.push = append(b, s.push...)
	s.off -= int64(len(b))
}

// Skip advances the cursor n bytes without interpreting them. Reaching
// end of stream before n bytes have been skipped is reported as io.EOF
// when the skip reads through the buffer; a seek past the end is only
// detected by the next read, matching plain file-seek behavior.
func (s *Source) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	if m := int64(len(s.push)); m > 0 {
		if n <= m {
			s.push = s.push[n:]
			s.off += n
			return nil
		}
		s.push = nil
		s.off += m
		n -= m
	}
	if buffered := int64(s.br.Buffered()); s.sk != nil && n > buffered {
		if _, err := s.br.Discard(int(buffered)); err != nil {
			return fmt.Errorf("skip: %w", err)
		}
		s.off += buffered
		n -= buffered
		// The buffer is empty now, so the next fill reads from the
		// seeked position.
		if _, err := s.sk.Seek(n, io.SeekCurrent); err != nil {
			// An *os.File on a pipe is a Seeker that cannot seek
			// (ESPIPE). The failed seek leaves the position unchanged,
			// so read the remainder through instead and stop trying
			// to seek this source.
			s.sk = nil
		} else {
			s.off += n
			return nil
		}
	}
	d, err := s.br.Discard(int(n))
	s.off += int64(d)
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("skip: %w", err)
	}
	return nil
}
