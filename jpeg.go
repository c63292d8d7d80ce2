package exifdir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// JPEG markers.
const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP1 = 0xE1
	markerTEM  = 0x01
	markerRST0 = 0xD0
	markerRST7 = 0xD7
)

// Return the payload of the first APP1 segment of a JPEG stream that holds
// Exif data, starting with the Exif marker. Segments are scanned up to the
// start of scan; ErrNoEXIF is returned if none was found.
func ExtractJPEGEXIF(r io.Reader) ([]byte, error) {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return nil, fmt.Errorf("ExtractJPEGEXIF: %w", unexpectedEOF(err))
	}
	if soi[0] != 0xFF || soi[1] != markerSOI {
		return nil, FormatError("not a JPEG stream")
	}
	var b [1]byte
	for {
		// Markers may be preceded by any number of 0xFF fill bytes.
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("ExtractJPEGEXIF: %w", unexpectedEOF(err))
		}
		if b[0] != 0xFF {
			return nil, FormatError(fmt.Sprintf("expected JPEG marker, found 0x%02X", b[0]))
		}
		marker := byte(0xFF)
		for marker == 0xFF {
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return nil, fmt.Errorf("ExtractJPEGEXIF: %w", unexpectedEOF(err))
			}
			marker = b[0]
		}
		switch {
		case marker == markerSOS || marker == markerEOI:
			return nil, ErrNoEXIF
		case marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7):
			continue
		}
		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("ExtractJPEGEXIF: %w", unexpectedEOF(err))
		}
		length := int(binary.BigEndian.Uint16(lenBuf[:]))
		if length < 2 {
			return nil, FormatError(fmt.Sprintf("JPEG segment 0x%02X has length %d", marker, length))
		}
		payload := make([]byte, length-2)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("ExtractJPEGEXIF: %w", unexpectedEOF(err))
		}
		if marker == markerAPP1 && bytes.HasPrefix(payload, []byte(EXIFMarker)) {
			return payload, nil
		}
	}
}

// Read a Directory from a stream holding either a JPEG image or TIFF data.
// The stream is positioned at its start and isn't closed.
func FromSource(src io.ReadSeeker) (*Directory, error) {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	var magic [2]byte
	if _, err := io.ReadFull(src, magic[:]); err != nil {
		return nil, fmt.Errorf("FromSource: %w", unexpectedEOF(err))
	}
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	if magic[0] == 0xFF && magic[1] == markerSOI {
		payload, err := ExtractJPEGEXIF(src)
		if err != nil {
			return nil, err
		}
		return ReadDirectory(payload)
	}
	r := NewReader()
	r.SetSource(src)
	return r.Read()
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
