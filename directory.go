package exifdir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
)

type entry struct {
	field Field
	value interface{}
}

// A decoded IFD: fields of one tag set with their values, in ascending tag
// order. Values are int64 for the integer types, string for ASCII,
// Rational for the rational types, float32 for FLOAT, float64 for DOUBLE,
// []byte for UNDEFINED and *Directory for IFD pointer tags.
//
// A Directory is built by one goroutine and must not be modified once it
// has been shared; after that any number of goroutines may read it.
type Directory struct {
	set     TagSet
	entries []entry
}

func NewDirectory(set TagSet) *Directory {
	return &Directory{set: set}
}

// Return the tag set of the directory.
func (d *Directory) TagSet() TagSet {
	return d.set
}

// Store a value under a field, replacing any previous value with the same
// tag. Integer and float values are converted to the representation used
// for the field's data type. Put panics if the tag does not belong to the
// directory's tag set, or if a nested directory is put under a tag that
// does not point to a directory of its set.
func (d *Directory) Put(field Field, value interface{}) {
	if field.Tag.Set != d.set {
		panic(fmt.Sprintf("Directory.Put: tag %s belongs to the %s tag set, not %s", field.Tag, field.Tag.Set.Name(), d.set.Name()))
	}
	if sub, ok := value.(*Directory); ok {
		set, found := ForIFDPointerTag(field.Tag.ID)
		if !field.Tag.IFDPointer || !found || sub == nil || sub.set != set {
			panic(fmt.Sprintf("Directory.Put: tag %s can't hold a nested directory of this kind", field.Tag))
		}
	} else {
		value = normalize(field.Type, value)
	}
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].field.Tag.ID >= field.Tag.ID
	})
	if i < len(d.entries) && d.entries[i].field.Tag.ID == field.Tag.ID {
		d.entries[i] = entry{field, value}
		return
	}
	d.entries = append(d.entries, entry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = entry{field, value}
}

// Store a value under a tag with the given data type.
func (d *Directory) PutValue(tag Tag, dataType DataType, value interface{}) {
	d.Put(Field{tag, dataType}, value)
}

// Store a nested directory under a pointer tag. The field gets data type
// LONG, as an IFD offset is normally written.
func (d *Directory) PutDirectory(tag Tag, sub *Directory) {
	d.Put(Field{tag, LONG}, sub)
}

// Return the value stored under a tag.
func (d *Directory) Value(tag Tag) (interface{}, bool) {
	for _, e := range d.entries {
		if e.field.Tag.ID == tag.ID && e.field.Tag.Set == tag.Set {
			return e.value, true
		}
	}
	return nil, false
}

// Return the field stored for a tag, which carries the data type the value
// was read or put with.
func (d *Directory) Field(tag Tag) (Field, bool) {
	for _, e := range d.entries {
		if e.field.Tag.ID == tag.ID && e.field.Tag.Set == tag.Set {
			return e.field, true
		}
	}
	return Field{}, false
}

// Return the nested directory stored under a pointer tag, or nil.
func (d *Directory) SubDirectory(tag Tag) *Directory {
	v, _ := d.Value(tag)
	sub, _ := v.(*Directory)
	return sub
}

// Return the fields in ascending tag order.
func (d *Directory) Fields() []Field {
	fields := make([]Field, len(d.entries))
	for i, e := range d.entries {
		fields[i] = e.field
	}
	return fields
}

// Number of fields in the directory. Fields of nested directories are not
// counted.
func (d *Directory) Size() int {
	return len(d.entries)
}

// Indicate if two directories have the same tag set, the same tags, and
// equal values. Byte slices are compared by content and nested
// directories recursively. Data types are not compared.
func (d *Directory) Equal(other *Directory) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.set != other.set || len(d.entries) != len(other.entries) {
		return false
	}
	for i := range d.entries {
		a, b := d.entries[i], other.entries[i]
		if !a.field.Equal(b.field) || !valuesEqual(a.value, b.value) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b interface{}) bool {
	switch x := a.(type) {
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case *Directory:
		y, ok := b.(*Directory)
		return ok && x.Equal(y)
	}
	return reflect.DeepEqual(a, b)
}

// Return a hash of the directory, consistent with Equal.
func (d *Directory) Hash() uint64 {
	h := xxhash.New()
	d.hashInto(h)
	return h.Sum64()
}

func (d *Directory) hashInto(h *xxhash.Digest) {
	var buf [8]byte
	h.Write([]byte{byte(d.set)})
	for _, e := range d.entries {
		binary.BigEndian.PutUint16(buf[:], e.field.Tag.ID)
		h.Write(buf[:2])
		switch v := e.value.(type) {
		case int64:
			binary.BigEndian.PutUint64(buf[:], uint64(v))
			h.Write(buf[:])
		case string:
			h.WriteString(v)
		case []byte:
			h.Write(v)
		case Rational:
			binary.BigEndian.PutUint64(buf[:], uint64(v.Numerator))
			h.Write(buf[:])
			binary.BigEndian.PutUint64(buf[:], uint64(v.Denominator))
			h.Write(buf[:])
		case float32:
			binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
			h.Write(buf[:4])
		case float64:
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		case *Directory:
			v.hashInto(h)
		default:
			fmt.Fprintf(h, "%v", v)
		}
	}
}

// Return a generic representation of the directory:
// {"tagSet": name, "fields": {fieldName: value}}. Nested directories are
// represented the same way under the name of their pointer field, and
// rationals become {"numerator": n, "denominator": d}.
func (d *Directory) ToMap() map[string]interface{} {
	fields := make(map[string]interface{}, len(d.entries))
	for _, e := range d.entries {
		switch v := e.value.(type) {
		case *Directory:
			fields[e.field.Tag.Name] = v.ToMap()
		case Rational:
			fields[e.field.Tag.Name] = v.ToMap()
		default:
			fields[e.field.Tag.Name] = v
		}
	}
	return map[string]interface{}{
		"tagSet": d.set.Name(),
		"fields": fields,
	}
}

// Convert numeric values to the representation of the data type. Anything
// else is stored unchanged.
func normalize(dataType DataType, value interface{}) interface{} {
	switch {
	case dataType.IsIntegral():
		if n, ok := toInt64(value); ok {
			return n
		}
	case dataType == FLOAT:
		if f, ok := toFloat64(value); ok {
			return float32(f)
		}
	case dataType == DOUBLE:
		if f, ok := toFloat64(value); ok {
			return f
		}
	}
	if r, ok := value.(*Rational); ok && r != nil {
		return *r
	}
	return value
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	}
	return 0, false
}

func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	if n, ok := toInt64(value); ok {
		return float64(n), true
	}
	return 0, false
}
