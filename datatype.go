package exifdir

import (
	"encoding/binary"
	"math"
)

// A TIFF field data type.
type DataType uint16

// TIFF data types (uppercase as in the TIFF spec).
const (
	BYTE      DataType = 1
	ASCII     DataType = 2
	SHORT     DataType = 3
	LONG      DataType = 4
	RATIONAL  DataType = 5
	SBYTE     DataType = 6
	UNDEFINED DataType = 7
	SSHORT    DataType = 8
	SLONG     DataType = 9
	SRATIONAL DataType = 10
	FLOAT     DataType = 11
	DOUBLE    DataType = 12
)

var DataTypeNames = map[DataType]string{
	BYTE:      "Byte",
	ASCII:     "ASCII",
	SHORT:     "Short",
	LONG:      "Long",
	RATIONAL:  "Rational",
	SBYTE:     "SByte",
	UNDEFINED: "Undefined",
	SSHORT:    "SShort",
	SLONG:     "SLong",
	SRATIONAL: "SRational",
	FLOAT:     "Float",
	DOUBLE:    "Double",
}

// Byte size of a single component of each data type.
var DataTypeSizes = map[DataType]int{
	BYTE:      1,
	ASCII:     1,
	SHORT:     2,
	LONG:      4,
	RATIONAL:  8,
	SBYTE:     1,
	UNDEFINED: 1,
	SSHORT:    2,
	SLONG:     4,
	SRATIONAL: 8,
	FLOAT:     4,
	DOUBLE:    8,
}

// The IFD field type of TIFF supplement 1, a 4-byte offset like LONG.
const tiffTypeIFD = 13

// Return the name of a data type.
func (t DataType) Name() string {
	name, found := DataTypeNames[t]
	if found {
		return name
	}
	return "Unknown"
}

func (t DataType) String() string {
	return t.Name()
}

// Return the size of a single component of a data type, or 0 if the type is
// not valid.
func (t DataType) Size() int {
	return DataTypeSizes[t]
}

// Indicate if the given type is one of the integer types.
func (t DataType) IsIntegral() bool {
	return t == BYTE || t == SHORT || t == LONG || t == SBYTE || t == SSHORT || t == SLONG
}

// Indicate if the given type is one of the rational types.
func (t DataType) IsRational() bool {
	return t == RATIONAL || t == SRATIONAL
}

// Indicate if the given type is one of the floating point types.
func (t DataType) IsFloat() bool {
	return t == FLOAT || t == DOUBLE
}

// Return the data type with the given numeric code. Unknown codes give
// UNDEFINED, so that the field's bytes are kept without interpretation.
func ForValue(v int) DataType {
	t := DataType(v)
	if v < 0 || v > math.MaxUint16 || t.Size() == 0 {
		return UNDEFINED
	}
	return t
}

// Return the data type corresponding to a TIFF field type code, as found in
// the type slot of an IFD entry. The IFD type gives LONG; anything else
// outside the Exif set, including the 8-byte BigTIFF types, gives UNDEFINED.
func ForTIFFTagType(t int) DataType {
	if t == tiffTypeIFD {
		return LONG
	}
	return ForValue(t)
}

// Decode the first component of a field's data. ASCII values lose one
// trailing NUL, UNDEFINED values are returned as a copy of the bytes.
// Integers are returned as int64, rationals as Rational, FLOAT as float32
// and DOUBLE as float64. Inputs shorter than the nominal width of SHORT and
// LONG are read at a narrower width instead of failing; an empty input gives
// the zero value of the type.
func (t DataType) Decode(b []byte, order binary.ByteOrder) interface{} {
	switch t {
	case ASCII:
		if len(b) > 0 && b[len(b)-1] == 0 {
			b = b[:len(b)-1]
		}
		return string(b)
	case BYTE:
		if len(b) == 0 {
			return int64(0)
		}
		return int64(b[0])
	case SBYTE:
		if len(b) == 0 {
			return int64(0)
		}
		return int64(int8(b[0]))
	case SHORT, SSHORT:
		switch {
		case len(b) >= 2:
			if t == SSHORT {
				return int64(int16(order.Uint16(b)))
			}
			return int64(order.Uint16(b))
		case len(b) == 1:
			return int64(b[0])
		}
		return int64(0)
	case LONG, SLONG:
		return decodeLong(t, b, order)
	case RATIONAL, SRATIONAL:
		if len(b) < 8 {
			return Rational{}
		}
		return Rational{
			Numerator:   int64(int32(order.Uint32(b))),
			Denominator: int64(int32(order.Uint32(b[4:]))),
		}
	case FLOAT:
		if len(b) < 4 {
			return float32(0)
		}
		return math.Float32frombits(order.Uint32(b))
	case DOUBLE:
		if len(b) < 8 {
			return float64(0)
		}
		return math.Float64frombits(order.Uint64(b))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// LONG and SLONG accept 8, 4, 2 or 1 byte inputs. Any other length below 4
// is read from its first byte.
func decodeLong(t DataType, b []byte, order binary.ByteOrder) int64 {
	switch {
	case len(b) >= 8:
		return int64(order.Uint64(b))
	case len(b) >= 4:
		if t == SLONG {
			return int64(int32(order.Uint32(b)))
		}
		return int64(order.Uint32(b))
	case len(b) == 2:
		if t == SLONG {
			return int64(int16(order.Uint16(b)))
		}
		return int64(order.Uint16(b))
	case len(b) > 0:
		return int64(b[0])
	}
	return 0
}
