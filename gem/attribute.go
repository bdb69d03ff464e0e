package gem

import "strconv"

// Field - Identifies which of the three indexed fields of a Gem is referred to
type Field int

const (
	// FieldID - The integer identifier
	FieldID Field = iota
	// FieldColor - The #RRGGBB color string
	FieldColor
	// FieldIntensity - The luma derived from the color
	FieldIntensity
)

// String - Returns the field name
func (F Field) String() string {
	switch F {
	case FieldID:
		return "id"
	case FieldColor:
		return "color"
	case FieldIntensity:
		return "intensity"
	default:
		return "field(" + strconv.Itoa(int(F)) + ")"
	}
}

// Attribute - Is a value of one of the indexed fields. It is used both as input to hash functions and as
// the predicate when scanning.
//   - Field tells which field the value belongs to
//   - Number holds the value for FieldID and FieldIntensity
//   - Text holds the value for FieldColor
type Attribute struct {
	Field  Field
	Number int64
	Text   string
}

// ID - Returns an Attribute for an identifier
func ID(id int64) Attribute {
	return Attribute{Field: FieldID, Number: id}
}

// Color - Returns an Attribute for a color string
func Color(color string) Attribute {
	return Attribute{Field: FieldColor, Text: color}
}

// Intensity - Returns an Attribute for an intensity value
func Intensity(intensity int64) Attribute {
	return Attribute{Field: FieldIntensity, Number: intensity}
}

// Matches - Returns true if g is occupied and its field equals the attribute value
func (A Attribute) Matches(g Gem) bool {
	if !g.Occupied {
		return false
	}

	switch A.Field {
	case FieldID:
		return g.ID == A.Number
	case FieldColor:
		return g.Color == A.Text
	case FieldIntensity:
		return g.Intensity == A.Number
	}

	return false
}

// String - Returns the attribute as field=value
func (A Attribute) String() string {
	if A.Field == FieldColor {
		return A.Field.String() + "=" + A.Text
	}
	return A.Field.String() + "=" + strconv.FormatInt(A.Number, 10)
}
