package exifdir

import (
	"encoding/json"
	"fmt"
)

// A ratio of two integers, as stored in RATIONAL and SRATIONAL fields. A
// zero denominator is allowed; GPS fields use it for values that could not
// be measured.
type Rational struct {
	Numerator   int64
	Denominator int64
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// Return the value as a float, or 0 if the denominator is 0.
func (r Rational) Float() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

// Return the form used by Directory.ToMap.
func (r Rational) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"numerator":   r.Numerator,
		"denominator": r.Denominator,
	}
}

// Rationals are serialized as a two element array.
func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{r.Numerator, r.Denominator})
}

func (r *Rational) UnmarshalJSON(data []byte) error {
	var parts []int64
	if err := json.Unmarshal(data, &parts); err != nil {
		return FormatError("rational value: " + err.Error())
	}
	if len(parts) != 2 {
		return FormatError(fmt.Sprintf("rational value has %d elements", len(parts)))
	}
	r.Numerator = parts[0]
	r.Denominator = parts[1]
	return nil
}
