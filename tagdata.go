package exifdir

// Registered tags. Each definition also adds the tag to tagTable.

var tagTable []Tag

func defineTag(set TagSet, id uint16, name string, pointer bool) Tag {
	tag := Tag{Set: set, ID: id, Name: name, IFDPointer: pointer}
	tagTable = append(tagTable, tag)
	return tag
}

// IFD pointer tags.
var (
	EXIFIFDPointer             = defineTag(BaselineTIFF, exifIFDPointerID, "EXIFIFD", true)
	GPSIFDPointer              = defineTag(BaselineTIFF, gpsIFDPointerID, "GPSIFD", true)
	InteroperabilityIFDPointer = defineTag(EXIF, interopIFDPointerID, "InteroperabilityIFD", true)
)

// TIFF 6.0 tags found in the 0th IFD of Exif data.
var (
	ImageWidth                  = defineTag(BaselineTIFF, 256, "ImageWidth", false)
	ImageLength                 = defineTag(BaselineTIFF, 257, "ImageLength", false)
	BitsPerSample               = defineTag(BaselineTIFF, 258, "BitsPerSample", false)
	Compression                 = defineTag(BaselineTIFF, 259, "Compression", false)
	PhotometricInterpretation   = defineTag(BaselineTIFF, 262, "PhotometricInterpretation", false)
	Orientation                 = defineTag(BaselineTIFF, 274, "Orientation", false)
	SamplesPerPixel             = defineTag(BaselineTIFF, 277, "SamplesPerPixel", false)
	PlanarConfiguration         = defineTag(BaselineTIFF, 284, "PlanarConfiguration", false)
	YCbCrSubSampling            = defineTag(BaselineTIFF, 530, "YCbCrSubSampling", false)
	YCbCrPositioning            = defineTag(BaselineTIFF, 531, "YCbCrPositioning", false)
	XResolution                 = defineTag(BaselineTIFF, 282, "XResolution", false)
	YResolution                 = defineTag(BaselineTIFF, 283, "YResolution", false)
	ResolutionUnit              = defineTag(BaselineTIFF, 296, "ResolutionUnit", false)
	StripOffsets                = defineTag(BaselineTIFF, 273, "StripOffsets", false)
	RowsPerStrip                = defineTag(BaselineTIFF, 278, "RowsPerStrip", false)
	StripByteCounts             = defineTag(BaselineTIFF, 279, "StripByteCounts", false)
	JPEGInterchangeFormat       = defineTag(BaselineTIFF, 513, "JPEGInterchangeFormat", false)
	JPEGInterchangeFormatLength = defineTag(BaselineTIFF, 514, "JPEGInterchangeFormatLength", false)
	TransferFunction            = defineTag(BaselineTIFF, 301, "TransferFunction", false)
	WhitePoint                  = defineTag(BaselineTIFF, 318, "WhitePoint", false)
	PrimaryChromaticities       = defineTag(BaselineTIFF, 319, "PrimaryChromaticities", false)
	YCbCrCoefficients           = defineTag(BaselineTIFF, 529, "YCbCrCoefficients", false)
	ReferenceBlackWhite         = defineTag(BaselineTIFF, 532, "ReferenceBlackWhite", false)
	DateTime                    = defineTag(BaselineTIFF, 306, "DateTime", false)
	ImageDescription            = defineTag(BaselineTIFF, 270, "ImageDescription", false)
	Make                        = defineTag(BaselineTIFF, 271, "Make", false)
	Model                       = defineTag(BaselineTIFF, 272, "Model", false)
	Software                    = defineTag(BaselineTIFF, 305, "Software", false)
	Artist                      = defineTag(BaselineTIFF, 315, "Artist", false)
	Copyright                   = defineTag(BaselineTIFF, 33432, "Copyright", false)
)

// Exif IFD tags (Exif 2.32).
var (
	ExifVersion               = defineTag(EXIF, 36864, "ExifVersion", false)
	FlashpixVersion           = defineTag(EXIF, 40960, "FlashpixVersion", false)
	ColorSpace                = defineTag(EXIF, 40961, "ColorSpace", false)
	Gamma                     = defineTag(EXIF, 42240, "Gamma", false)
	ComponentsConfiguration   = defineTag(EXIF, 37121, "ComponentsConfiguration", false)
	CompressedBitsPerPixel    = defineTag(EXIF, 37122, "CompressedBitsPerPixel", false)
	PixelXDimension           = defineTag(EXIF, 40962, "PixelXDimension", false)
	PixelYDimension           = defineTag(EXIF, 40963, "PixelYDimension", false)
	MakerNote                 = defineTag(EXIF, 37500, "MakerNote", false)
	UserComment               = defineTag(EXIF, 37510, "UserComment", false)
	RelatedSoundFile          = defineTag(EXIF, 40964, "RelatedSoundFile", false)
	DateTimeOriginal          = defineTag(EXIF, 36867, "DateTimeOriginal", false)
	DateTimeDigitized         = defineTag(EXIF, 36868, "DateTimeDigitized", false)
	OffsetTime                = defineTag(EXIF, 36880, "OffsetTime", false)
	OffsetTimeOriginal        = defineTag(EXIF, 36881, "OffsetTimeOriginal", false)
	OffsetTimeDigitized       = defineTag(EXIF, 36882, "OffsetTimeDigitized", false)
	SubSecTime                = defineTag(EXIF, 37520, "SubSecTime", false)
	SubSecTimeOriginal        = defineTag(EXIF, 37521, "SubSecTimeOriginal", false)
	SubSecTimeDigitized       = defineTag(EXIF, 37522, "SubSecTimeDigitized", false)
	Temperature               = defineTag(EXIF, 37888, "Temperature", false)
	Humidity                  = defineTag(EXIF, 37889, "Humidity", false)
	Pressure                  = defineTag(EXIF, 37890, "Pressure", false)
	WaterDepth                = defineTag(EXIF, 37891, "WaterDepth", false)
	Acceleration              = defineTag(EXIF, 37892, "Acceleration", false)
	CameraElevationAngle      = defineTag(EXIF, 37893, "CameraElevationAngle", false)
	ImageUniqueID             = defineTag(EXIF, 42016, "ImageUniqueID", false)
	CameraOwnerName           = defineTag(EXIF, 42032, "CameraOwnerName", false)
	BodySerialNumber          = defineTag(EXIF, 42033, "BodySerialNumber", false)
	LensSpecification         = defineTag(EXIF, 42034, "LensSpecification", false)
	LensMake                  = defineTag(EXIF, 42035, "LensMake", false)
	LensModel                 = defineTag(EXIF, 42036, "LensModel", false)
	ExposureTime              = defineTag(EXIF, 33434, "ExposureTime", false)
	FNumber                   = defineTag(EXIF, 33437, "FNumber", false)
	ExposureProgram           = defineTag(EXIF, 34850, "ExposureProgram", false)
	SpectralSensitivity       = defineTag(EXIF, 34852, "SpectralSensitivity", false)
	PhotographicSensitivity   = defineTag(EXIF, 34855, "PhotographicSensitivity", false)
	OECF                      = defineTag(EXIF, 34856, "OECF", false)
	SensitivityType           = defineTag(EXIF, 34864, "SensitivityType", false)
	StandardOutputSensitivity = defineTag(EXIF, 34865, "StandardOutputSensitivity", false)
	RecommendedExposureIndex  = defineTag(EXIF, 34866, "RecommendedExposureIndex", false)
	ISOSpeed                  = defineTag(EXIF, 34867, "ISOSpeed", false)
	ISOSpeedLatitudeyyy       = defineTag(EXIF, 34868, "ISOSpeedLatitudeyyy", false)
	ISOSpeedLatitudezzz       = defineTag(EXIF, 34869, "ISOSpeedLatitudezzz", false)
	ShutterSpeedValue         = defineTag(EXIF, 37377, "ShutterSpeedValue", false)
	Aperture                  = defineTag(EXIF, 37378, "Aperture", false)
	Brightness                = defineTag(EXIF, 37379, "Brightness", false)
	ExposureBias              = defineTag(EXIF, 37380, "ExposureBias", false)
	MaxApertureValue          = defineTag(EXIF, 37381, "MaxApertureValue", false)
	SubjectDistance           = defineTag(EXIF, 37382, "SubjectDistance", false)
	MeteringMode              = defineTag(EXIF, 37383, "MeteringMode", false)
	LightSource               = defineTag(EXIF, 37384, "LightSource", false)
	Flash                     = defineTag(EXIF, 37385, "Flash", false)
	FocalLength               = defineTag(EXIF, 37386, "FocalLength", false)
	SubjectArea               = defineTag(EXIF, 37396, "SubjectArea", false)
	FlashEnergy               = defineTag(EXIF, 41483, "FlashEnergy", false)
	SpatialFrequencyResponse  = defineTag(EXIF, 41484, "SpatialFrequencyResponse", false)
	FocalPlaneXResolution     = defineTag(EXIF, 41486, "FocalPlaneXResolution", false)
	FocalPlaneYResolution     = defineTag(EXIF, 41487, "FocalPlaneYResolution", false)
	FocalPlaneResolutionUnit  = defineTag(EXIF, 41488, "FocalPlaneResolutionUnit", false)
	SubjectLocation           = defineTag(EXIF, 41492, "SubjectLocation", false)
	ExposureIndex             = defineTag(EXIF, 41493, "ExposureIndex", false)
	SensingMethod             = defineTag(EXIF, 41495, "SensingMethod", false)
	FileSource                = defineTag(EXIF, 41728, "FileSource", false)
	SceneType                 = defineTag(EXIF, 41729, "SceneType", false)
	CFAPattern                = defineTag(EXIF, 41730, "CFAPattern", false)
	CustomRendered            = defineTag(EXIF, 41985, "CustomRendered", false)
	ExposureMode              = defineTag(EXIF, 41986, "ExposureMode", false)
	WhiteBalance              = defineTag(EXIF, 41987, "WhiteBalance", false)
	DigitalZoomRatio          = defineTag(EXIF, 41988, "DigitalZoomRatio", false)
	FocalLengthIn35mmFilm     = defineTag(EXIF, 41989, "FocalLengthIn35mmFilm", false)
	SceneCaptureType          = defineTag(EXIF, 41990, "SceneCaptureType", false)
	GainControl               = defineTag(EXIF, 41991, "GainControl", false)
	Contrast                  = defineTag(EXIF, 41992, "Contrast", false)
	Saturation                = defineTag(EXIF, 41993, "Saturation", false)
	Sharpness                 = defineTag(EXIF, 41994, "Sharpness", false)
	DeviceSettingDescription  = defineTag(EXIF, 41995, "DeviceSettingDescription", false)
	SubjectDistanceRange      = defineTag(EXIF, 41996, "SubjectDistanceRange", false)
)

// GPS IFD tags.
var (
	GPSVersionID         = defineTag(GPS, 0, "GPSVersionID", false)
	GPSLatitudeRef       = defineTag(GPS, 1, "GPSLatitudeRef", false)
	GPSLatitude          = defineTag(GPS, 2, "GPSLatitude", false)
	GPSLongitudeRef      = defineTag(GPS, 3, "GPSLongitudeRef", false)
	GPSLongitude         = defineTag(GPS, 4, "GPSLongitude", false)
	GPSAltitudeRef       = defineTag(GPS, 5, "GPSAltitudeRef", false)
	GPSAltitude          = defineTag(GPS, 6, "GPSAltitude", false)
	GPSTimeStamp         = defineTag(GPS, 7, "GPSTimeStamp", false)
	GPSSatellites        = defineTag(GPS, 8, "GPSSatellites", false)
	GPSStatus            = defineTag(GPS, 9, "GPSStatus", false)
	GPSMeasureMode       = defineTag(GPS, 10, "GPSMeasureMode", false)
	GPSDOP               = defineTag(GPS, 11, "GPSDOP", false)
	GPSSpeedRef          = defineTag(GPS, 12, "GPSSpeedRef", false)
	GPSSpeed             = defineTag(GPS, 13, "GPSSpeed", false)
	GPSTrackRef          = defineTag(GPS, 14, "GPSTrackRef", false)
	GPSTrack             = defineTag(GPS, 15, "GPSTrack", false)
	GPSImgDirectionRef   = defineTag(GPS, 16, "GPSImgDirectionRef", false)
	GPSImgDirection      = defineTag(GPS, 17, "GPSImgDirection", false)
	GPSMapDatum          = defineTag(GPS, 18, "GPSMapDatum", false)
	GPSDestLatitudeRef   = defineTag(GPS, 19, "GPSDestLatitudeRef", false)
	GPSDestLatitude      = defineTag(GPS, 20, "GPSDestLatitude", false)
	GPSDestLongitudeRef  = defineTag(GPS, 21, "GPSDestLongitudeRef", false)
	GPSDestLongitude     = defineTag(GPS, 22, "GPSDestLongitude", false)
	GPSDestBearingRef    = defineTag(GPS, 23, "GPSDestBearingRef", false)
	GPSDestBearing       = defineTag(GPS, 24, "GPSDestBearing", false)
	GPSDestDistanceRef   = defineTag(GPS, 25, "GPSDestDistanceRef", false)
	GPSDestDistance      = defineTag(GPS, 26, "GPSDestDistance", false)
	GPSProcessingMethod  = defineTag(GPS, 27, "GPSProcessingMethod", false)
	GPSAreaInformation   = defineTag(GPS, 28, "GPSAreaInformation", false)
	GPSDateStamp         = defineTag(GPS, 29, "GPSDateStamp", false)
	GPSDifferential      = defineTag(GPS, 30, "GPSDifferential", false)
	GPSHPositioningError = defineTag(GPS, 31, "GPSHPositioningError", false)
)

// Interoperability IFD tags.
var (
	InteroperabilityIndex = defineTag(Interoperability, 1, "InteroperabilityIndex", false)
)
