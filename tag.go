package exifdir

import (
	"fmt"
	"sort"
)

// Tag namespace: the kind of IFD a tag may appear in.
type TagSet uint8

const (
	BaselineTIFF     TagSet = 0
	EXIF             TagSet = 1
	GPS              TagSet = 2
	Interoperability TagSet = 3
)

// All known tag sets.
var TagSets = []TagSet{BaselineTIFF, EXIF, GPS, Interoperability}

// Tags which, when found in a parent IFD, point to an IFD of the given set.
// The root set has no pointer tag.
const (
	exifIFDPointerID    = 0x8769 // Exif 2.3
	gpsIFDPointerID     = 0x8825 // Exif 2.3
	interopIFDPointerID = 0xA005 // Exif 2.3
)

var tagSetPointers = map[TagSet]uint16{
	BaselineTIFF:     0,
	EXIF:             exifIFDPointerID,
	GPS:              gpsIFDPointerID,
	Interoperability: interopIFDPointerID,
}

func (set TagSet) Name() string {
	switch set {
	case BaselineTIFF:
		return "Baseline TIFF"
	case EXIF:
		return "EXIF"
	case GPS:
		return "GPS"
	case Interoperability:
		return "Interoperability"
	}
	panic("TagSet.Name: invalid value")
}

func (set TagSet) String() string {
	return set.Name()
}

// Return the tag that points to an IFD of this set, or 0 for the root set.
func (set TagSet) IFDPointerTag() uint16 {
	return tagSetPointers[set]
}

// A tag with a known meaning. The ID is unique within the tag's set, but
// the same ID may have another meaning in another set.
type Tag struct {
	Set        TagSet
	ID         uint16
	Name       string
	IFDPointer bool // The field's value is the offset of a nested IFD.
}

func (tag Tag) String() string {
	return fmt.Sprintf("%s(%d)", tag.Name, tag.ID)
}

// Lookup indices, built in init from tagTable.
var (
	tagsByID      map[TagSet]map[uint16]Tag
	tagsBySet     map[TagSet][]Tag
	setsByPointer map[uint16]TagSet
)

func init() {
	tagsByID = make(map[TagSet]map[uint16]Tag, len(TagSets))
	tagsBySet = make(map[TagSet][]Tag, len(TagSets))
	setsByPointer = make(map[uint16]TagSet, len(TagSets))
	for _, set := range TagSets {
		tagsByID[set] = make(map[uint16]Tag)
		if ptr := set.IFDPointerTag(); ptr != 0 {
			setsByPointer[ptr] = set
		}
	}
	for _, tag := range tagTable {
		if _, dup := tagsByID[tag.Set][tag.ID]; dup {
			panic(fmt.Sprintf("duplicate tag %d in %s", tag.ID, tag.Set.Name()))
		}
		tagsByID[tag.Set][tag.ID] = tag
		tagsBySet[tag.Set] = append(tagsBySet[tag.Set], tag)
	}
	for _, tags := range tagsBySet {
		sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	}
}

// Indicate if a tag ID is registered in this set.
func (set TagSet) ContainsTag(id uint16) bool {
	_, found := tagsByID[set][id]
	return found
}

// Return the tag with the given ID in this set.
func (set TagSet) Tag(id uint16) (Tag, bool) {
	tag, found := tagsByID[set][id]
	return tag, found
}

// Return the tags of this set in ascending ID order. The slice must not be
// modified.
func (set TagSet) Tags() []Tag {
	return tagsBySet[set]
}

// Return the set of the IFD that a pointer tag refers to.
func ForIFDPointerTag(id uint16) (TagSet, bool) {
	set, found := setsByPointer[id]
	return set, found
}
