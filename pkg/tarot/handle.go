package tarot

// Handle (poignée) is a bonus declared for holding many trumps
type Handle int

// handle constants
const (
	HandleRefused Handle = iota
	HandleSimple
	HandleDouble
	HandleTriple
)

// Points returns the flat bonus of the handle
func (h Handle) Points() float64 {
	switch h {
	case HandleSimple:
		return 20
	case HandleDouble:
		return 30
	case HandleTriple:
		return 40
	default:
		return 0
	}
}

// upTo returns Refused and every handle up to h, the choices offered to a player
func (h Handle) upTo() []Handle {
	handles := make([]Handle, 0, 4)
	for other := HandleRefused; other <= h; other++ {
		handles = append(handles, other)
	}

	return handles
}

func (h Handle) String() string {
	switch h {
	case HandleRefused:
		return "Refused"
	case HandleSimple:
		return "Simple"
	case HandleDouble:
		return "Double"
	case HandleTriple:
		return "Triple"
	default:
		return "unknown"
	}
}
