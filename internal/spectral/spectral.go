// Package spectral holds the seven stellar classes and their fixed properties.
package spectral

import "fmt"

type Class string

const (
	O Class = "O"
	B Class = "B"
	A Class = "A"
	F Class = "F"
	G Class = "G"
	K Class = "K"
	M Class = "M"
)

// Classes is the enumeration order. Draws index into it and ties resolve by it.
var Classes = []Class{O, B, A, F, G, K, M}

func Parse(s string) (Class, error) {
	for _, c := range Classes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown spectral class %q", s)
}

// Cool reports whether stars of this class bias their planets toward habitable.
func (c Class) Cool() bool {
	switch c {
	case G, K, M:
		return true
	default:
		return false
	}
}

// RGB is the display color of the class. Unknown classes get the G color.
func (c Class) RGB() [3]uint8 {
	switch c {
	case O:
		return [3]uint8{155, 180, 255}
	case B:
		return [3]uint8{170, 190, 255}
	case A:
		return [3]uint8{200, 210, 255}
	case F:
		return [3]uint8{230, 230, 255}
	case G:
		return [3]uint8{255, 245, 230}
	case K:
		return [3]uint8{255, 210, 170}
	case M:
		return [3]uint8{255, 180, 150}
	default:
		return [3]uint8{255, 245, 230}
	}
}

// Dominant returns the class with the highest count, ties broken by enumeration
// order. With no counts at all it returns G.
func Dominant(counts map[Class]int) Class {
	best, bestCount := G, 0
	for _, c := range Classes {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}
