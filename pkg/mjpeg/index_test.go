package mjpeg

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndexFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stream.mjpg"+IndexExt))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func readIndex(t *testing.T, path string) []uint64 {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Zero(t, len(raw)%8, "index must be whole 64-bit words")
	out := make([]uint64, len(raw)/8)
	for i := range out {
		out[i] = binary.BigEndian.Uint64(raw[i*8:])
	}
	return out
}

func TestIndexer_TwoFramesBackToBack(t *testing.T) {
	data := stream(
		seg(SOI), seg(SOS, 0x01), []byte{0x11, 0x22}, seg(EOI),
		seg(SOI), seg(SOS, 0x01), []byte{0x33}, seg(EOI),
	)

	f := newIndexFile(t)
	ix, err := NewIndexer(f)
	require.NoError(t, err)

	require.NoError(t, Scan(bytes.NewReader(data), ix))
	require.NoError(t, ix.Finish())
	require.NoError(t, f.Sync())

	words := readIndex(t, f.Name())
	require.Len(t, words, 3)
	assert.Equal(t, uint64(2), words[0])
	assert.Equal(t, uint64(0), words[1])
	assert.Less(t, words[1], words[2])

	// Each offset points at the leading 0xFF of an SOI.
	for _, off := range words[1:] {
		assert.Equal(t, byte(Premark), data[off])
		assert.Equal(t, byte(SOI), data[off+1])
	}
}

func TestIndexer_SingleJPEGIsOneFrame(t *testing.T) {
	data := stream(
		seg(SOI),
		seg(APP0, 0x4A, 0x46, 0x49, 0x46, 0x00),
		seg(SOS, 0x01), []byte{0x11},
		seg(EOI),
	)

	f := newIndexFile(t)
	ix, err := NewIndexer(f)
	require.NoError(t, err)

	require.NoError(t, Scan(bytes.NewReader(data), ix))
	require.NoError(t, ix.Finish())
	assert.Equal(t, int64(1), ix.Frames())

	words := readIndex(t, f.Name())
	require.Equal(t, []uint64{1, 0}, words)
}

func TestIndexer_PlaceholderUntilFinish(t *testing.T) {
	f := newIndexFile(t)
	ix, err := NewIndexer(f)
	require.NoError(t, err)

	// Before Finish the count on disk is the zero placeholder.
	words := readIndex(t, f.Name())
	require.Equal(t, []uint64{0}, words)

	require.NoError(t, ix.OnMarker(SOI, 0, 0))
	require.NoError(t, ix.Finish())

	words = readIndex(t, f.Name())
	require.Equal(t, []uint64{1, 0}, words)
}

func TestIndexer_NoFrames(t *testing.T) {
	// A bare EOI scans cleanly but holds no frame to index.
	f := newIndexFile(t)
	ix, err := NewIndexer(f)
	require.NoError(t, err)

	require.NoError(t, Scan(bytes.NewReader(stream(seg(EOI))), ix))
	assert.ErrorIs(t, ix.Finish(), ErrNoFrames)
}
