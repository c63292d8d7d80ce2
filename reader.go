package exifdir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Marker preceding the TIFF header in a JPEG APP1 segment.
const EXIFMarker = "Exif\x00\x00"

// Size of a TIFF header and of an IFD entry.
const (
	HeaderSize = 8
	EntrySize  = 12
)

// Field data is read in pieces of at most this size, so that a corrupt
// count can't cause a huge allocation before the input runs out.
const maxChunkSize = 10 << 20

// Reader decodes TIFF/Exif IFD data from a seekable stream into a
// Directory tree. A Reader is used by one goroutine at a time and reads one
// source; Close must be called before it is given another.
type Reader struct {
	src    io.ReadSeeker
	order  binary.ByteOrder
	origin int64
}

func NewReader() *Reader {
	return &Reader{}
}

// Set the stream to read from. The stream must be positioned at the start
// of the TIFF header, or of the Exif marker that precedes it. SetSource
// panics if a source is already set and the Reader hasn't been closed.
func (r *Reader) SetSource(src io.ReadSeeker) {
	if r.src != nil {
		panic("Reader.SetSource: source already set; Close the reader first")
	}
	r.src = src
}

// Set a byte slice as the source.
func (r *Reader) SetSourceBytes(buf []byte) {
	r.SetSource(bytes.NewReader(buf))
}

// Release the source, closing it if it is an io.Closer. The Reader may then
// be given a new source.
func (r *Reader) Close() error {
	src := r.src
	r.src = nil
	r.order = nil
	r.origin = 0
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Byte order of the data read, or nil if Read hasn't found a header yet.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// Read the 0th IFD and the IFDs it points to.
func (r *Reader) Read() (*Directory, error) {
	if r.src == nil {
		return nil, ErrNoSource
	}
	start := time.Now()
	ifdPos, err := r.readHeader()
	if err != nil {
		return nil, err
	}
	if err := r.seek(int64(ifdPos)); err != nil {
		return nil, err
	}
	dir, err := r.readIFD(BaselineTIFF)
	if err != nil {
		return nil, err
	}
	tracef("read %d fields, IFD0 at %d, in %s", dir.Size(), ifdPos, time.Since(start))
	return dir, nil
}

// Skip the optional Exif marker, then read the byte order signature and
// the 0th IFD position.
func (r *Reader) readHeader() (uint32, error) {
	pos, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("Reader: %w", err)
	}
	r.origin = pos
	marker := make([]byte, len(EXIFMarker))
	n, err := io.ReadFull(r.src, marker)
	if err == nil && string(marker) == EXIFMarker {
		r.origin = pos + int64(n)
	} else if _, err := r.src.Seek(pos, io.SeekStart); err != nil {
		return 0, fmt.Errorf("Reader: %w", err)
	}
	header := make([]byte, HeaderSize)
	if err := r.readFull(header); err != nil {
		return 0, fmt.Errorf("Reader: header: %w", err)
	}
	switch {
	case header[0] == 0x49 && header[1] == 0x49:
		r.order = binary.LittleEndian
	case header[0] == 0x4d && header[1] == 0x4d:
		r.order = binary.BigEndian
	default:
		return 0, FormatError(fmt.Sprintf("unrecognized byte order signature 0x%02X%02X", header[0], header[1]))
	}
	// Bytes 2 and 3 hold the TIFF version, which isn't checked.
	return r.order.Uint32(header[4:]), nil
}

// Read the IFD at the current position. Entries with unknown tags are
// skipped, and pointer tags are followed into nested IFDs.
func (r *Reader) readIFD(set TagSet) (*Directory, error) {
	dir := NewDirectory(set)
	var countBuf [2]byte
	if err := r.readFull(countBuf[:]); err != nil {
		return nil, fmt.Errorf("Reader: %s IFD entry count: %w", set.Name(), err)
	}
	count := int(r.order.Uint16(countBuf[:]))
	buf := make([]byte, EntrySize)
	for i := 0; i < count; i++ {
		if err := r.readFull(buf); err != nil {
			return nil, fmt.Errorf("Reader: %s IFD entry %d: %w", set.Name(), i, err)
		}
		id := r.order.Uint16(buf[0:])
		dataType := ForTIFFTagType(int(r.order.Uint16(buf[2:])))
		components := r.order.Uint32(buf[4:])
		slot := buf[8:12]
		tag, found := set.Tag(id)
		if !found {
			tracef("skipping unknown %s tag %d (0x%04X)", set.Name(), id, id)
			continue
		}
		if tag.IFDPointer {
			if components != 1 || !dataType.IsIntegral() {
				warningf("%s has type %s and count %d, following it anyway", tag, dataType.Name(), components)
			}
			subSet, _ := ForIFDPointerTag(id)
			sub, err := r.readSubIFD(subSet, r.order.Uint32(slot))
			if err != nil {
				return nil, err
			}
			dir.PutDirectory(tag, sub)
			continue
		}
		length := uint64(dataType.Size()) * uint64(components)
		var data []byte
		if length <= 4 {
			data = slot[:length]
		} else {
			var err error
			data, err = r.readAt(r.order.Uint32(slot), length)
			if err != nil {
				return nil, fmt.Errorf("Reader: %s: %w", tag, err)
			}
		}
		dir.PutValue(tag, dataType, dataType.Decode(data, r.order))
	}
	return dir, nil
}

// Read a nested IFD at an offset from the origin, then return to the
// current position.
func (r *Reader) readSubIFD(set TagSet, offset uint32) (*Directory, error) {
	saved, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("Reader: %w", err)
	}
	if err := r.seek(int64(offset)); err != nil {
		return nil, err
	}
	sub, err := r.readIFD(set)
	if err != nil {
		return nil, err
	}
	if _, err := r.src.Seek(saved, io.SeekStart); err != nil {
		return nil, fmt.Errorf("Reader: %w", err)
	}
	return sub, nil
}

// Read length bytes at an offset from the origin, then return to the
// current position.
func (r *Reader) readAt(offset uint32, length uint64) ([]byte, error) {
	saved, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if err := r.seek(int64(offset)); err != nil {
		return nil, err
	}
	var data []byte
	for remaining := length; remaining > 0; {
		n := remaining
		if n > maxChunkSize {
			n = maxChunkSize
		}
		chunk := make([]byte, n)
		if err := r.readFull(chunk); err != nil {
			return nil, err
		}
		data = append(data, chunk...)
		remaining -= n
	}
	if _, err := r.src.Seek(saved, io.SeekStart); err != nil {
		return nil, err
	}
	return data, nil
}

// Seek to an offset from the origin.
func (r *Reader) seek(offset int64) error {
	if _, err := r.src.Seek(r.origin+offset, io.SeekStart); err != nil {
		return fmt.Errorf("Reader: seek to %d: %w", offset, err)
	}
	return nil
}

// Fill buf from the source. Running out of data is reported as
// io.ErrUnexpectedEOF, also when no bytes were read at all.
func (r *Reader) readFull(buf []byte) error {
	_, err := io.ReadFull(r.src, buf)
	return unexpectedEOF(err)
}

// Read a Directory from a byte slice holding TIFF data, with or without a
// leading Exif marker.
func ReadDirectory(buf []byte) (*Directory, error) {
	r := NewReader()
	r.SetSourceBytes(buf)
	defer r.Close()
	return r.Read()
}
