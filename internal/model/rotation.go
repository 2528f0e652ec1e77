package model

// Orientation is one of the six axis-aligned rotations of a cuboid.
type Orientation int

const (
	RT1 Orientation = iota
	RT2
	RT3
	RT4
	RT5
	RT6
)

var orientationNames = [...]string{"RT1", "RT2", "RT3", "RT4", "RT5", "RT6"}

func (o Orientation) String() string {
	if o < RT1 || o > RT6 {
		return "RTunknown"
	}
	return orientationNames[o]
}

// RotatedDimensions maps canonical (w, h, l) to the rotated triple for o.
func RotatedDimensions(o Orientation, w, h, l float64) (rw, rh, rl float64) {
	switch o {
	case RT1:
		return w, h, l
	case RT2:
		return l, h, w
	case RT3:
		return h, w, l
	case RT4:
		return l, w, h
	case RT5:
		return h, l, w
	case RT6:
		return w, l, h
	default:
		return w, h, l
	}
}

// Next cycles RT1->RT2->...->RT6->RT1.
func Next(o Orientation) Orientation {
	return (o + 1) % 6
}

// Previous is the inverse of Next.
func Previous(o Orientation) Orientation {
	return (o + 5) % 6
}

// InitialOrientation picks the orientation that puts the flat side down:
// the middle value becomes width, the smallest becomes height, the
// largest becomes length. When two dimensions tie, the first matching
// label in RT1..RT6 order wins, keeping the choice deterministic.
func InitialOrientation(w, h, l float64) Orientation {
	s := [3]float64{w, h, l}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	targetW, targetH, targetL := s[1], s[0], s[2]

	for o := RT1; o <= RT6; o++ {
		rw, rh, rl := RotatedDimensions(o, w, h, l)
		if rw == targetW && rh == targetH && rl == targetL {
			return o
		}
	}
	return RT1
}
