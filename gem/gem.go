package gem

import (
	"fmt"
	"strconv"
)

// colorLength - Length of a well-formed color string on the form #RRGGBB
const colorLength int = 7

// lumaWeights - Red, green and blue weights of the luma approximation, in thousandths
var lumaWeights = [3]int64{299, 587, 114}

// lumaScale - Denominator of lumaWeights
const lumaScale int64 = 1000

// Gem - Represents one record stored in a slot of a table or in a snapshot index.
// If Occupied is false all other fields are to be considered absent.
//   - ID is the identifier, intended to be unique within a table but never enforced
//   - Color is a color string on the form #RRGGBB
//   - Intensity is the luma derived from Color, it is never set on its own
//   - Occupied tells a used slot from an empty one
type Gem struct {
	ID        int64
	Color     string
	Intensity int64
	Occupied  bool
}

// New - Returns an occupied Gem with its intensity derived from color
func New(id int64, color string) Gem {
	return Gem{
		ID:        id,
		Color:     color,
		Intensity: Luma(color),
		Occupied:  true,
	}
}

// SetColor - Overwrites the color and derives a new intensity from it
func (G *Gem) SetColor(color string) {
	G.Color = color
	G.Intensity = Luma(color)
}

// Attribute - Returns the value of the given field as an Attribute
func (G Gem) Attribute(field Field) Attribute {
	switch field {
	case FieldColor:
		return Color(G.Color)
	case FieldIntensity:
		return Intensity(G.Intensity)
	default:
		return ID(G.ID)
	}
}

// String - Returns a human readable form of the gem
func (G Gem) String() string {
	if !G.Occupied {
		return "<empty>"
	}
	return fmt.Sprintf("ID=%d, Color=%s, Intensity=%d", G.ID, G.Color, G.Intensity)
}

// Luma - Returns the brightness of a color on the form #RRGGBB, floor(0.299*R + 0.587*G + 0.114*B) taken just
// below the weighted sum. The sum is computed exactly in thousandths, and a sum landing on a whole number is
// rounded down to the number below it, so #FFFFFF gives 254 and #FF0000 gives 76.
// A color string that is not well-formed gives 0, it is never rejected.
func Luma(color string) int64 {
	if len(color) != colorLength || color[0] != '#' {
		return 0
	}

	var sum int64
	for i, weight := range lumaWeights {
		c, err := strconv.ParseUint(color[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0
		}
		sum += weight * int64(c)
	}

	if sum == 0 {
		return 0
	}

	return (sum - 1) / lumaScale
}
