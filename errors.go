package exifdir

import "errors"

// A FormatError reports that the input is not a valid TIFF/Exif structure
// or not a valid serialized Directory.
type FormatError string

func (e FormatError) Error() string { return "exifdir: invalid format: " + string(e) }

var (
	// Read was called on a Reader without a source.
	ErrNoSource = errors.New("exifdir: reader has no source")
	// A JPEG stream has no APP1 segment with Exif data.
	ErrNoEXIF = errors.New("exifdir: no Exif segment found")
	// A value, such as a NaN float, has no JSON form.
	ErrNotRepresentable = errors.New("exifdir: value can't be represented in JSON")
)
