package exifdir

import (
	"encoding/binary"
	"testing"
)

// Create a TIFF buffer whose 0th IFD points to Exif and GPS IFDs, the Exif
// IFD pointing in turn to an Interoperability IFD, and check that it's read
// back correctly.
func TestSubIFDs(t *testing.T) {
	interop := NewDirectory(Interoperability)
	interop.PutValue(InteroperabilityIndex, ASCII, "R98")
	exif := NewDirectory(EXIF)
	exif.PutValue(PixelXDimension, LONG, 64)
	exif.PutDirectory(InteroperabilityIFDPointer, interop)
	gps := NewDirectory(GPS)
	gps.PutValue(GPSAltitudeRef, BYTE, 0)
	gps.PutValue(GPSLatitudeRef, ASCII, "N")
	root := NewDirectory(BaselineTIFF)
	root.PutValue(Compression, SHORT, 6)
	root.PutDirectory(EXIFIFDPointer, exif)
	root.PutDirectory(GPSIFDPointer, gps)

	buf, err := Encode(root, binary.LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	getroot, err := ReadDirectory(buf)
	if err != nil {
		t.Fatal(err)
	}
	if getroot.Size() != 3 {
		t.Errorf("0th IFD has %d fields, want 3", getroot.Size())
	}
	getexif := getroot.SubDirectory(EXIFIFDPointer)
	if getexif == nil || getexif.TagSet() != EXIF {
		t.Fatal("Exif IFD not read back")
	}
	if getexif.Size() != 2 {
		t.Errorf("Exif IFD has %d fields, want 2", getexif.Size())
	}
	getinterop := getexif.SubDirectory(InteroperabilityIFDPointer)
	if getinterop == nil || getinterop.TagSet() != Interoperability {
		t.Fatal("Interoperability IFD not read back")
	}
	if v, _ := getinterop.Value(InteroperabilityIndex); v != "R98" {
		t.Errorf("InteroperabilityIndex %v", v)
	}
	getgps := getroot.SubDirectory(GPSIFDPointer)
	if getgps == nil || getgps.TagSet() != GPS {
		t.Fatal("GPS IFD not read back")
	}
	if !getgps.Equal(gps) {
		t.Errorf("GPS IFD %v", getgps.ToMap())
	}
	field, _ := getroot.Field(EXIFIFDPointer)
	if field.Type != LONG {
		t.Errorf("pointer field has type %s", field.Type.Name())
	}
}
