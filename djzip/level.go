package djzip

import (
	"compress/flate"
	"fmt"
)

// Level selects how an entry's payload is encoded. The zip format only
// distinguishes stored and deflated entries; the three deflating levels
// control compressor effort, not the wire format.
type Level int

const (
	// Store writes the payload verbatim (method 0).
	Store Level = iota
	// Fast deflates with minimum effort.
	Fast
	// Default deflates with the compressor's default effort.
	Default
	// Best deflates with maximum effort, trading speed for size.
	Best
)

// method returns the value for the zip header's method field.
func (l Level) method() uint16 {
	if l == Store {
		return methodStored
	}
	return methodDeflated
}

// flateLevel maps a deflating Level to its compress/flate intensity.
func (l Level) flateLevel() int {
	switch l {
	case Fast:
		return flate.BestSpeed
	case Best:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}

func (l Level) String() string {
	switch l {
	case Store:
		return "store"
	case Fast:
		return "fast"
	case Default:
		return "default"
	case Best:
		return "best"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a user-facing level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "store", "stored":
		return Store, nil
	case "fast":
		return Fast, nil
	case "default", "":
		return Default, nil
	case "best":
		return Best, nil
	}
	return Default, fmt.Errorf("unknown compression level %q", s)
}
