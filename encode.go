package exifdir

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Write a TIFF header at the start of buf with the given byte order and
// 0th IFD position. Eight bytes are used.
func PutHeader(buf []byte, order binary.ByteOrder, ifdPos uint32) {
	if order == binary.LittleEndian {
		buf[0] = 0x49
		buf[1] = 0x49
	} else if order == binary.BigEndian {
		buf[0] = 0x4d
		buf[1] = 0x4d
	} else {
		panic("PutHeader: invalid value of 'order'")
	}
	order.PutUint16(buf[2:], 42)
	order.PutUint32(buf[4:], ifdPos)
}

// Align a position to the next word (2 byte) boundary.
func Align(pos uint32) uint32 {
	if pos/2*2 != pos {
		return pos + 1
	}
	return pos
}

// Encode a directory tree as TIFF data in the given byte order. The 0th
// IFD follows the header, and each IFD is followed by its external data and
// then by the IFDs it points to. Each value is written as a single
// component, except ASCII and byte slice values which are written whole.
// There is no next IFD. Offsets are relative to the start of the header.
func Encode(d *Directory, order binary.ByteOrder) ([]byte, error) {
	e := encoder{order: order, buf: make([]byte, HeaderSize)}
	PutHeader(e.buf, order, HeaderSize)
	if _, err := e.putIFD(d); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// As Encode, but prefixed with the Exif marker, which is the form stored
// in a JPEG APP1 segment.
func EncodeAPP1(d *Directory, order binary.ByteOrder) ([]byte, error) {
	tiff, err := Encode(d, order)
	if err != nil {
		return nil, err
	}
	return append([]byte(EXIFMarker), tiff...), nil
}

type encoder struct {
	order binary.ByteOrder
	buf   []byte
}

func (e *encoder) align() {
	if Align(uint32(len(e.buf))) != uint32(len(e.buf)) {
		e.buf = append(e.buf, 0)
	}
}

// Append an IFD and everything it refers to, returning its position.
func (e *encoder) putIFD(d *Directory) (uint32, error) {
	e.align()
	pos := uint32(len(e.buf))
	if len(d.entries) > math.MaxUint16 {
		return 0, fmt.Errorf("Encode: %s IFD has too many fields", d.set.Name())
	}
	tableSize := 2 + EntrySize*len(d.entries) + 4
	e.buf = append(e.buf, make([]byte, tableSize)...)
	e.order.PutUint16(e.buf[pos:], uint16(len(d.entries)))
	type subIFD struct {
		slot uint32
		dir  *Directory
	}
	var subs []subIFD
	for i, ent := range d.entries {
		entryPos := pos + 2 + uint32(i*EntrySize)
		slot := entryPos + 8
		dataType, count, data, err := e.fieldData(ent.field, ent.value)
		if err != nil {
			return 0, err
		}
		e.order.PutUint16(e.buf[entryPos:], ent.field.Tag.ID)
		e.order.PutUint16(e.buf[entryPos+2:], uint16(dataType))
		e.order.PutUint32(e.buf[entryPos+4:], count)
		if sub, ok := ent.value.(*Directory); ok {
			subs = append(subs, subIFD{slot, sub})
			continue
		}
		if len(data) <= 4 {
			copy(e.buf[slot:slot+4], data)
		} else {
			e.align()
			e.order.PutUint32(e.buf[slot:], uint32(len(e.buf)))
			e.buf = append(e.buf, data...)
		}
	}
	// Sub-IFDs are written after all of this IFD's data.
	for _, sub := range subs {
		subPos, err := e.putIFD(sub.dir)
		if err != nil {
			return 0, err
		}
		e.order.PutUint32(e.buf[sub.slot:], subPos)
	}
	return pos, nil
}

// Return the data type, count and bytes to write for a value.
func (e *encoder) fieldData(field Field, value interface{}) (DataType, uint32, []byte, error) {
	dataType := field.Type
	switch v := value.(type) {
	case *Directory:
		return LONG, 1, nil, nil
	case int64:
		size := dataType.Size()
		if !dataType.IsIntegral() {
			return 0, 0, nil, fmt.Errorf("Encode: %s: integer value for %s field", field.Tag, dataType.Name())
		}
		data := make([]byte, size)
		switch size {
		case 1:
			data[0] = byte(v)
		case 2:
			e.order.PutUint16(data, uint16(v))
		case 4:
			e.order.PutUint32(data, uint32(v))
		}
		return dataType, 1, data, nil
	case string:
		data := make([]byte, len(v)+1)
		copy(data, v)
		return ASCII, uint32(len(data)), data, nil
	case []byte:
		if dataType.Size() != 1 {
			dataType = UNDEFINED
		}
		return dataType, uint32(len(v)), v, nil
	case Rational:
		if !dataType.IsRational() {
			dataType = RATIONAL
		}
		data := make([]byte, 8)
		e.order.PutUint32(data, uint32(v.Numerator))
		e.order.PutUint32(data[4:], uint32(v.Denominator))
		return dataType, 1, data, nil
	case float32:
		data := make([]byte, 4)
		e.order.PutUint32(data, math.Float32bits(v))
		return FLOAT, 1, data, nil
	case float64:
		data := make([]byte, 8)
		e.order.PutUint64(data, math.Float64bits(v))
		return DOUBLE, 1, data, nil
	}
	return 0, 0, nil, fmt.Errorf("Encode: %s: can't encode value of type %T", field.Tag, value)
}
