package exifdir

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

const sampleJSON = `{"fields":[` +
	`{"tag":256,"dataType":3,"value":64},` +
	`{"tag":257,"dataType":3,"value":56},` +
	`{"tag":271,"dataType":2,"value":"Canon"},` +
	`{"tag":274,"dataType":3,"value":1},` +
	`{"tag":282,"dataType":5,"value":[72,1]},` +
	`{"tag":284,"dataType":3,"value":1},` +
	`{"tag":306,"dataType":2,"value":"2002:07:12 16:54:59"},` +
	`{"tag":34665,"dataType":4,"value":{"parentTag":34665,"fields":[` +
	`{"tag":33434,"dataType":5,"value":[1,160]},` +
	`{"tag":34855,"dataType":3,"value":50},` +
	`{"tag":36864,"dataType":7,"value":"MDIyMA=="},` +
	`{"tag":36867,"dataType":2,"value":"2002:07:12 16:54:59"},` +
	`{"tag":37377,"dataType":10,"value":[117,16]},` +
	`{"tag":40962,"dataType":4,"value":64}]}}]}`

// As persisted by earlier versions, with other whitespace.
const prettyJSON = `{
  "fields" : [ {
    "tag" : 256,
    "dataType" : 3,
    "value" : 64
  }, {
    "tag" : 257,
    "dataType" : 3,
    "value" : 56
  }, {
    "tag" : 271,
    "dataType" : 2,
    "value" : "Canon"
  }, {
    "tag" : 274,
    "dataType" : 3,
    "value" : 1
  }, {
    "tag" : 282,
    "dataType" : 5,
    "value" : [ 72, 1 ]
  }, {
    "tag" : 284,
    "dataType" : 3,
    "value" : 1
  }, {
    "tag" : 306,
    "dataType" : 2,
    "value" : "2002:07:12 16:54:59"
  }, {
    "tag" : 34665,
    "dataType" : 4,
    "value" : {
      "parentTag" : 34665,
      "fields" : [ {
        "tag" : 33434,
        "dataType" : 5,
        "value" : [ 1, 160 ]
      }, {
        "tag" : 34855,
        "dataType" : 3,
        "value" : 50
      }, {
        "tag" : 36864,
        "dataType" : 7,
        "value" : "MDIyMA=="
      }, {
        "tag" : 36867,
        "dataType" : 2,
        "value" : "2002:07:12 16:54:59"
      }, {
        "tag" : 37377,
        "dataType" : 10,
        "value" : [ 117, 16 ]
      }, {
        "tag" : 40962,
        "dataType" : 4,
        "value" : 64
      } ]
    }
  } ]
}`

func TestSerialize(t *testing.T) {
	data, err := Serialize(sampleRoot())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleJSON {
		t.Errorf("got %s\nwant %s", data, sampleJSON)
	}
}

func TestDeserialize(t *testing.T) {
	for _, in := range []string{sampleJSON, prettyJSON} {
		dir, err := Deserialize([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		if !dir.Equal(sampleRoot()) {
			t.Errorf("got %v", dir.ToMap())
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	root := sampleRoot()
	gps := NewDirectory(GPS)
	gps.PutValue(GPSAltitude, RATIONAL, Rational{0, 1})
	gps.PutValue(GPSSpeed, FLOAT, float32(1.1))
	gps.PutValue(GPSDestDistance, DOUBLE, 1.1)
	gps.PutValue(GPSDifferential, SSHORT, -1)
	gps.PutValue(GPSHPositioningError, SLONG, -70000)
	gps.PutValue(GPSAltitudeRef, BYTE, 1)
	gps.PutValue(GPSProcessingMethod, UNDEFINED, []byte("ASCII\x00\x00\x00GPS"))
	root.PutDirectory(GPSIFDPointer, gps)
	exif := root.SubDirectory(EXIFIFDPointer)
	interop := NewDirectory(Interoperability)
	interop.PutValue(InteroperabilityIndex, ASCII, "R98")
	exif.PutDirectory(InteroperabilityIFDPointer, interop)

	data, err := SerializeIndent(root, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(root) {
		t.Errorf("round trip changed the directory:\n%s", data)
	}
	if got.Hash() != root.Hash() {
		t.Error("round trip changed the hash")
	}
}

// Field keys may come in any order.
func TestDeserializeKeyOrder(t *testing.T) {
	in := `{"fields":[{"value":[72,1],"dataType":5,"tag":282}]}`
	dir, err := Deserialize([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := dir.Value(XResolution); v != (Rational{72, 1}) {
		t.Errorf("XResolution %v", v)
	}
}

// Byte values have been persisted as Base64 as well as numbers.
func TestDeserializeByte(t *testing.T) {
	in := `{"fields":[{"tag":271,"dataType":1,"value":"AgMAAA=="},{"tag":272,"dataType":1,"value":7}]}`
	dir, err := Deserialize([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := dir.Value(Make)
	if b, ok := v.([]byte); !ok || !bytes.Equal(b, []byte{2, 3, 0, 0}) {
		t.Errorf("Make %v", v)
	}
	if v, _ = dir.Value(Model); v != int64(7) {
		t.Errorf("Model %v", v)
	}
}

func TestDeserializeErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":            `{"fields":[`,
		"null":              `null`,
		"missing tag":       `{"fields":[{"dataType":3,"value":1}]}`,
		"missing data type": `{"fields":[{"tag":256,"value":1}]}`,
		"missing value":     `{"fields":[{"tag":256,"dataType":3}]}`,
		"null value":        `{"fields":[{"tag":256,"dataType":3,"value":null}]}`,
		"unknown tag":       `{"fields":[{"tag":33437,"dataType":5,"value":[9,1]}]}`,
		"unknown parentTag": `{"parentTag":12345,"fields":[]}`,
		"short rational":    `{"fields":[{"tag":282,"dataType":5,"value":[72]}]}`,
		"string for short":  `{"fields":[{"tag":256,"dataType":3,"value":"64"}]}`,
		"wrong nested set":  `{"fields":[{"tag":34665,"dataType":4,"value":{"parentTag":34853,"fields":[]}}]}`,
		"bad nested field":  `{"fields":[{"tag":34665,"dataType":4,"value":{"parentTag":34665,"fields":[{"tag":256}]}}]}`,
		"interop in root":   `{"fields":[{"tag":40965,"dataType":4,"value":{"parentTag":40965,"fields":[]}}]}`,
	}
	for name, in := range cases {
		_, err := Deserialize([]byte(in))
		var formatErr FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("%s: got %v, want a FormatError", name, err)
		}
	}
}

func TestRationalJSON(t *testing.T) {
	data, err := Rational{0, 1}.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[0,1]" {
		t.Errorf("got %s", data)
	}
}

// NaN and infinities read from a file have no JSON form.
func TestSerializeNonFinite(t *testing.T) {
	values := []interface{}{float32(math.NaN()), math.Inf(1), math.Inf(-1)}
	for _, v := range values {
		gps := NewDirectory(GPS)
		gps.PutValue(GPSAltitudeRef, BYTE, 0)
		gps.PutValue(GPSSpeed, DOUBLE, v)
		root := NewDirectory(BaselineTIFF)
		root.PutDirectory(GPSIFDPointer, gps)
		_, err := Serialize(root)
		if !errors.Is(err, ErrNotRepresentable) {
			t.Errorf("%v: got %v, want ErrNotRepresentable", v, err)
			continue
		}
		if !strings.Contains(err.Error(), "GPSSpeed") {
			t.Errorf("error doesn't name the field: %v", err)
		}
	}
}
