package exifdir

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Serialized form of a Directory. The root omits parentTag; nested
// directories carry the ID of the tag that points to them.
type jsonDirectory struct {
	ParentTag uint16      `json:"parentTag,omitempty"`
	Fields    []jsonField `json:"fields"`
}

type jsonField struct {
	Tag      uint16      `json:"tag"`
	DataType DataType    `json:"dataType"`
	Value    interface{} `json:"value"`
}

// Serialize a directory tree to its JSON form:
// {"fields": [{"tag": id, "dataType": code, "value": v}, ...]}, in
// ascending tag order. Rationals become [numerator, denominator], byte
// slices Base64 strings, and nested directories objects of the same shape
// with an added "parentTag". FLOAT and DOUBLE values that are NaN or
// infinite have no JSON form; serializing them fails with an error wrapping
// ErrNotRepresentable that names the field.
func Serialize(d *Directory) ([]byte, error) {
	return json.Marshal(d)
}

// As Serialize, with indentation.
func SerializeIndent(d *Directory, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(d, prefix, indent)
}

// Build a directory tree from its JSON form. Tag 40965, the
// Interoperability IFD pointer, is only accepted in an EXIF directory, so
// JSON that lists it among the root's fields is rejected as an
// unrecognized Baseline TIFF tag.
func Deserialize(data []byte) (*Directory, error) {
	return decodeDirectory(data)
}

func (d *Directory) MarshalJSON() ([]byte, error) {
	out := jsonDirectory{
		ParentTag: d.set.IFDPointerTag(),
		Fields:    make([]jsonField, len(d.entries)),
	}
	for i, e := range d.entries {
		if !finite(e.value) {
			return nil, fmt.Errorf("%w: %s is %v", ErrNotRepresentable, e.field.Tag, e.value)
		}
		out.Fields[i] = jsonField{Tag: e.field.Tag.ID, DataType: e.field.Type, Value: e.value}
	}
	return json.Marshal(out)
}

func finite(value interface{}) bool {
	switch v := value.(type) {
	case float32:
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return true
}

func (d *Directory) UnmarshalJSON(data []byte) error {
	dir, err := decodeDirectory(data)
	if err != nil {
		return err
	}
	*d = *dir
	return nil
}

func decodeDirectory(data []byte) (*Directory, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, FormatError("directory: " + err.Error())
	}
	if obj == nil {
		return nil, FormatError("directory is null")
	}
	set := BaselineTIFF
	if raw, ok := obj["parentTag"]; ok {
		id, err := decodeInteger(raw)
		if err != nil {
			return nil, FormatError("parentTag: " + err.Error())
		}
		if id != 0 {
			found := false
			if id > 0 && id <= math.MaxUint16 {
				set, found = ForIFDPointerTag(uint16(id))
			}
			if !found {
				return nil, FormatError(fmt.Sprintf("unrecognized tag set: %d", id))
			}
		}
	}
	dir := NewDirectory(set)
	var fields []map[string]json.RawMessage
	if raw, ok := obj["fields"]; ok {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, FormatError("fields: " + err.Error())
		}
	}
	for i, field := range fields {
		if err := decodeField(dir, field); err != nil {
			return nil, FormatError(fmt.Sprintf("field %d: %v", i, err))
		}
	}
	return dir, nil
}

// Two passes over a field's keys: the first finds the tag and data type,
// the second decodes the value according to them.
func decodeField(dir *Directory, field map[string]json.RawMessage) error {
	var (
		tag      Tag
		dataType DataType
		haveTag  bool
		haveType bool
	)
	for key, raw := range field {
		switch key {
		case "tag":
			id, err := decodeInteger(raw)
			if err != nil {
				return fmt.Errorf("tag: %v", err)
			}
			if id >= 0 && id <= math.MaxUint16 {
				tag, haveTag = dir.set.Tag(uint16(id))
			}
			if !haveTag {
				return fmt.Errorf("unrecognized %s tag %d", dir.set.Name(), id)
			}
		case "dataType":
			code, err := decodeInteger(raw)
			if err != nil {
				return fmt.Errorf("dataType: %v", err)
			}
			dataType, haveType = ForValue(int(code)), true
		}
	}
	switch {
	case !haveTag:
		return fmt.Errorf("missing tag")
	case !haveType:
		return fmt.Errorf("missing data type")
	}
	for key, raw := range field {
		if key != "value" {
			continue
		}
		if tag.IFDPointer {
			sub, err := decodeDirectory(raw)
			if err != nil {
				return err
			}
			subSet, _ := ForIFDPointerTag(tag.ID)
			if sub.set != subSet {
				return fmt.Errorf("%s holds a %s directory", tag, sub.set.Name())
			}
			dir.Put(Field{tag, dataType}, sub)
			return nil
		}
		value, err := decodeValue(dataType, raw)
		if err != nil {
			return fmt.Errorf("%s value: %v", tag, err)
		}
		dir.Put(Field{tag, dataType}, value)
		return nil
	}
	return fmt.Errorf("%s is missing its value", tag)
}

func decodeValue(dataType DataType, raw json.RawMessage) (interface{}, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("null")
	}
	switch dataType {
	case ASCII:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case BYTE, SBYTE:
		// Byte values have been persisted both as numbers and as Base64.
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return base64.StdEncoding.DecodeString(s)
		}
		return decodeInteger(raw)
	case SHORT, LONG, SSHORT, SLONG:
		return decodeInteger(raw)
	case RATIONAL, SRATIONAL:
		var r Rational
		if err := r.UnmarshalJSON(raw); err != nil {
			return nil, err
		}
		return r, nil
	case FLOAT:
		n, err := decodeNumber(raw)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(n.String(), 32)
		return float32(f), err
	case DOUBLE:
		n, err := decodeNumber(raw)
		if err != nil {
			return nil, err
		}
		return n.Float64()
	}
	var b []byte
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeNumber(raw json.RawMessage) (json.Number, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("%s is not a number", raw)
	}
	return n, nil
}

func decodeInteger(raw json.RawMessage) (int64, error) {
	n, err := decodeNumber(raw)
	if err != nil {
		return 0, err
	}
	return n.Int64()
}
