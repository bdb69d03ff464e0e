package gem

import (
	"fmt"
	"io"
)

// RandomColor - Returns a color on the form #RRGGBB made from three bytes read from rnd
func RandomColor(rnd io.Reader) (color string, err error) {
	var rgb [3]byte
	_, err = io.ReadFull(rnd, rgb[:])
	if err != nil {
		err = fmt.Errorf("error while reading random color: %w", err)
		return
	}

	color = fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])

	return
}
