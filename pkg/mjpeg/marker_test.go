package mjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarker_StandAlone(t *testing.T) {
	standAlone := []Marker{TEM, RST0, RST0 + 3, RST7, SOI, EOI}
	for _, m := range standAlone {
		assert.True(t, m.StandAlone(), "%s should be stand-alone", m.Name())
	}

	lengthPrefixed := []Marker{SOS, DNL, DQT, DHT, DRI, COM, SOF0, SOF0 + 2, APP0, APP0 + 15, Marker(0)}
	for _, m := range lengthPrefixed {
		assert.False(t, m.StandAlone(), "%s should not be stand-alone", m.Name())
	}
}

func TestMarker_Immediate(t *testing.T) {
	immediate := []Marker{DNL, RST0, RST0 + 5, RST7}
	for _, m := range immediate {
		assert.True(t, m.Immediate(), "%s should be immediate", m.Name())
	}

	// The zero escape is not a marker and never immediate.
	notImmediate := []Marker{Marker(0), TEM, SOI, EOI, SOS, DQT, COM, APP0}
	for _, m := range notImmediate {
		assert.False(t, m.Immediate(), "%s should not be immediate", m.Name())
	}
}

func TestMarker_PremarkIsNotAMarker(t *testing.T) {
	assert.Panics(t, func() { Marker(Premark).StandAlone() })
	assert.Panics(t, func() { Marker(Premark).Immediate() })
}

func TestMarker_Name(t *testing.T) {
	assert.Equal(t, "SOI", SOI.Name())
	assert.Equal(t, "EOI", EOI.Name())
	assert.Equal(t, "SOS", SOS.Name())
	assert.Equal(t, "DNL", DNL.Name())
	assert.Equal(t, "SOF0", SOF0.Name())
	assert.Equal(t, "SOF2", (SOF0 + 2).Name())
	assert.Equal(t, "RST3", (RST0 + 3).Name())
	assert.Equal(t, "APP15", (APP0 + 15).Name())
	assert.Equal(t, "JPG13", (JPG0 + 13).Name())

	// Reserved values fall back to hex.
	assert.Equal(t, "0x02", Marker(0x02).Name())
	assert.Equal(t, "0xBF", Marker(0xBF).Name())
}
