package exifdir

import "fmt"

// A Directory key: a tag and the data type its value was stored with.
// Fields are identified and ordered by tag alone.
type Field struct {
	Tag  Tag
	Type DataType
}

func NewField(tag Tag, dataType DataType) Field {
	return Field{Tag: tag, Type: dataType}
}

// Indicate if two fields have the same tag. The data type is not compared.
func (f Field) Equal(other Field) bool {
	return f.Tag.Set == other.Tag.Set && f.Tag.ID == other.Tag.ID
}

// Field ordering, by ascending tag ID.
func (f Field) Less(other Field) bool {
	return f.Tag.ID < other.Tag.ID
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s", f.Tag, f.Type.Name())
}
