package exifdir

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestForValue(t *testing.T) {
	for v := 1; v <= 12; v++ {
		if ForValue(v) != DataType(v) {
			t.Errorf("ForValue(%d) = %v", v, ForValue(v))
		}
	}
	for _, v := range []int{0, 13, 99, -1, 70000} {
		if ForValue(v) != UNDEFINED {
			t.Errorf("ForValue(%d) should be UNDEFINED", v)
		}
	}
	if ForTIFFTagType(13) != LONG {
		t.Error("ForTIFFTagType didn't fold the IFD type")
	}
	for _, v := range []int{16, 17, 18} {
		if ForTIFFTagType(v) != UNDEFINED {
			t.Errorf("ForTIFFTagType(%d) = %v, want UNDEFINED", v, ForTIFFTagType(v))
		}
	}
	if ForTIFFTagType(3) != SHORT || ForTIFFTagType(200) != UNDEFINED {
		t.Error("ForTIFFTagType")
	}
}

func TestSizes(t *testing.T) {
	want := []int{1, 1, 2, 4, 8, 1, 1, 2, 4, 8, 4, 8}
	for i, size := range want {
		if DataType(i+1).Size() != size {
			t.Errorf("%s size %d, want %d", DataType(i+1).Name(), DataType(i+1).Size(), size)
		}
	}
}

func TestDecodeASCII(t *testing.T) {
	if v := ASCII.Decode([]byte("Canon\x00"), binary.BigEndian); v != "Canon" {
		t.Errorf("got %q", v)
	}
	// Only one NUL is removed, and only if present.
	if v := ASCII.Decode([]byte("ab\x00\x00"), binary.BigEndian); v != "ab\x00" {
		t.Errorf("got %q", v)
	}
	if v := ASCII.Decode([]byte("ab"), binary.BigEndian); v != "ab" {
		t.Errorf("got %q", v)
	}
}

func TestDecodeByte(t *testing.T) {
	if v := BYTE.Decode([]byte{0x79}, binary.BigEndian); v != int64(0x79) {
		t.Errorf("BYTE got %v", v)
	}
	if v := SBYTE.Decode([]byte{0xFE}, binary.BigEndian); v != int64(-2) {
		t.Errorf("SBYTE got %v", v)
	}
}

func TestDecodeShort(t *testing.T) {
	b := []byte{0x12, 0x79}
	if v := SHORT.Decode(b, binary.BigEndian); v != int64(4729) {
		t.Errorf("SHORT big endian got %v", v)
	}
	if v := SHORT.Decode(b, binary.LittleEndian); v != int64(0x7912) {
		t.Errorf("SHORT little endian got %v", v)
	}
	if v := SSHORT.Decode([]byte{0xFF, 0xFE}, binary.BigEndian); v != int64(-2) {
		t.Errorf("SSHORT got %v", v)
	}
	// A single byte is read on its own.
	if v := SHORT.Decode([]byte{0x33}, binary.BigEndian); v != int64(0x33) {
		t.Errorf("SHORT one byte got %v", v)
	}
}

func TestDecodeLong(t *testing.T) {
	eight := []byte{0x00, 0x00, 0x03, 0x04, 0x05, 0x08, 0x12, 0x33}
	cases := []struct {
		b    []byte
		want int64
	}{
		{eight, 3315799167539},
		{eight[0:7], 772},
		{eight[3:8], 67438610},
		{eight[5:8], 8},
		{eight[6:8], 4659},
		{eight[7:8], 51},
	}
	for _, c := range cases {
		if v := LONG.Decode(c.b, binary.BigEndian); v != c.want {
			t.Errorf("LONG % X: got %v, want %d", c.b, v, c.want)
		}
	}
	if v := SLONG.Decode([]byte{0xFF, 0xFF, 0xFF, 0xFE}, binary.BigEndian); v != int64(-2) {
		t.Errorf("SLONG got %v", v)
	}
	if v := LONG.Decode([]byte{0xFF, 0xFF, 0xFF, 0xFE}, binary.BigEndian); v != int64(0xFFFFFFFE) {
		t.Errorf("LONG got %v", v)
	}
	if v := LONG.Decode(nil, binary.BigEndian); v != int64(0) {
		t.Errorf("LONG empty got %v", v)
	}
}

func TestDecodeRational(t *testing.T) {
	b := []byte{0x00, 0x00, 0x03, 0x04, 0x05, 0x08, 0x12, 0x33}
	if v := RATIONAL.Decode(b, binary.BigEndian); v != (Rational{772, 84415027}) {
		t.Errorf("big endian got %v", v)
	}
	if v := RATIONAL.Decode(b, binary.LittleEndian); v != (Rational{67305472, 856819717}) {
		t.Errorf("little endian got %v", v)
	}
}

func TestDecodeFloat(t *testing.T) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b, math.Float32bits(math.Pi))
	if v := FLOAT.Decode(b[:4], binary.LittleEndian); v != float32(math.Pi) {
		t.Errorf("FLOAT got %v", v)
	}
	binary.BigEndian.PutUint64(b, math.Float64bits(math.E))
	if v := DOUBLE.Decode(b, binary.BigEndian); v != math.E {
		t.Errorf("DOUBLE got %v", v)
	}
}

func TestDecodeUndefined(t *testing.T) {
	b := []byte{0x30, 0x32, 0x32, 0x30}
	v, ok := UNDEFINED.Decode(b, binary.BigEndian).([]byte)
	if !ok || !bytes.Equal(v, b) {
		t.Errorf("got %v", v)
	}
	b[0] = 0
	if v[0] != 0x30 {
		t.Error("UNDEFINED value shares the input's memory")
	}
}

// Encode one field of each type, read it back and compare.
func doOrder(t *testing.T, order binary.ByteOrder) {
	exif := NewDirectory(EXIF)
	exif.PutValue(ExposureTime, RATIONAL, Rational{1, 160})
	exif.PutValue(ShutterSpeedValue, SRATIONAL, Rational{-117, 16})
	exif.PutValue(ExifVersion, UNDEFINED, []byte("0220"))
	exif.PutValue(ComponentsConfiguration, UNDEFINED, []byte{1, 2, 3, 0, 9})
	exif.PutValue(Temperature, SRATIONAL, Rational{-5, 1})
	exif.PutValue(Gamma, RATIONAL, Rational{22, 10})
	exif.PutValue(PhotographicSensitivity, SHORT, 50)
	exif.PutValue(PixelXDimension, LONG, 640)
	exif.PutValue(ExposureBias, SRATIONAL, Rational{0, 1})
	exif.PutValue(FlashEnergy, FLOAT, float32(math.Pi))
	exif.PutValue(Humidity, DOUBLE, math.E)
	exif.PutValue(CameraElevationAngle, SLONG, -42)
	exif.PutValue(SubjectDistanceRange, SSHORT, -3)
	exif.PutValue(FileSource, SBYTE, -1)
	exif.PutValue(SceneType, BYTE, 1)
	root := NewDirectory(BaselineTIFF)
	root.PutValue(Make, ASCII, "Canon")
	root.PutValue(Model, ASCII, "EOS")
	root.PutDirectory(EXIFIFDPointer, exif)

	buf, err := Encode(root, order)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadDirectory(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(root) {
		t.Errorf("%v: read back %v, want %v", order, got.ToMap(), root.ToMap())
	}
	field, _ := got.SubDirectory(EXIFIFDPointer).Field(FlashEnergy)
	if field.Type != FLOAT {
		t.Errorf("%v: FlashEnergy read back as %s", order, field.Type.Name())
	}
}

func TestData(t *testing.T) {
	doOrder(t, binary.BigEndian)
	doOrder(t, binary.LittleEndian)
}
