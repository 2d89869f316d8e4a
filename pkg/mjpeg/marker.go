// Package mjpeg scans the marker stream of JPEG and raw Motion-JPEG
// files (a raw M-JPEG stream is a plain concatenation of complete JPEG
// images). The scanner walks the byte stream one marker unit at a time
// and reports each marker with its absolute offset and payload length;
// it never decodes pixel data or interprets segment payloads.
package mjpeg

import "fmt"

// Premark is the byte value that introduces every JPEG marker.
const Premark = 0xFF

// JPEG marker codes (ITU-T T.81 Table B.1).
const (
	TEM  Marker = 0x01 // Temporary for arithmetic coding
	SOF0 Marker = 0xC0 // Start of frame; SOFn = SOF0+n, n = 0-15 excluding 4, 8 and 12
	DHT  Marker = 0xC4 // Define Huffman tables
	JPG  Marker = 0xC8 // Reserved for JPEG extensions
	DAC  Marker = 0xCC // Define arithmetic coding conditioning
	RST0 Marker = 0xD0 // Restart zero; RSTn = RST0+n, n = 0-7
	RST7 Marker = 0xD7 // Restart seven
	SOI  Marker = 0xD8 // Start of image
	EOI  Marker = 0xD9 // End of image
	SOS  Marker = 0xDA // Start of scan
	DQT  Marker = 0xDB // Define quantization tables
	DNL  Marker = 0xDC // Define number of lines
	DRI  Marker = 0xDD // Define restart interval
	DHP  Marker = 0xDE // Define hierarchical progression
	EXP  Marker = 0xDF // Expand reference components
	APP0 Marker = 0xE0 // Application segment zero; APPn = APP0+n, n = 0-15
	JPG0 Marker = 0xF0 // JPEG extension zero; JPGn = JPG0+n, n = 0-13
	COM  Marker = 0xFE // Comment
)

// Marker identifies a JPEG marker. Valid marker values are 0x01-0xFE;
// the pre-marker byte 0xFF is never itself a marker, and 0x00 is only
// the escape for a literal 0xFF byte inside compressed scan data.
type Marker uint8

// StandAlone reports whether m carries no payload and no length field.
// The stand-alone markers are TEM, the restart markers, SOI and EOI.
// StandAlone panics when called on the pre-marker byte 0xFF, which is a
// programming error rather than a malformed stream.
func (m Marker) StandAlone() bool {
	if m == Premark {
		panic("mjpeg: pre-marker byte is not a marker")
	}
	return m == TEM || (m >= RST0 && m <= RST7) || m == SOI || m == EOI
}

// Immediate reports whether m may legally appear inside compressed scan
// data. The immediate markers are the restart markers and DNL. The zero
// escape is not a marker and is not immediate. Immediate panics under
// the same precondition as StandAlone.
func (m Marker) Immediate() bool {
	if m == Premark {
		panic("mjpeg: pre-marker byte is not a marker")
	}
	return m == DNL || (m >= RST0 && m <= RST7)
}

var markerNames [256]string

func init() {
	markerNames[TEM] = "TEM"
	markerNames[DHT] = "DHT"
	markerNames[JPG] = "JPG"
	markerNames[DAC] = "DAC"
	markerNames[SOI] = "SOI"
	markerNames[EOI] = "EOI"
	markerNames[SOS] = "SOS"
	markerNames[DQT] = "DQT"
	markerNames[DNL] = "DNL"
	markerNames[DRI] = "DRI"
	markerNames[DHP] = "DHP"
	markerNames[EXP] = "EXP"
	markerNames[COM] = "COM"

	var i Marker
	for i = SOF0; i <= SOF0+0xF; i++ {
		if i == SOF0+4 || i == SOF0+8 || i == SOF0+12 {
			continue
		}
		markerNames[i] = fmt.Sprintf("SOF%d", i-SOF0)
	}
	for i = RST0; i <= RST7; i++ {
		markerNames[i] = fmt.Sprintf("RST%d", i-RST0)
	}
	for i = APP0; i <= APP0+0xF; i++ {
		markerNames[i] = fmt.Sprintf("APP%d", i-APP0)
	}
	for i = JPG0; i <= JPG0+0xD; i++ {
		markerNames[i] = fmt.Sprintf("JPG%d", i-JPG0)
	}
}

// Name returns the symbolic name of m, or its hexadecimal form for
// marker values with no assigned name.
func (m Marker) Name() string {
	if markerNames[m] != "" {
		return markerNames[m]
	}
	return fmt.Sprintf("0x%02X", uint8(m))
}
