package shake

import "fmt"

// Strength is the security strength of a SHAKE instance in bits.
type Strength int

const (
	Strength128 Strength = 128
	Strength256 Strength = 256
)

// Validate returns an error matching ErrUnsupportedStrength unless s is 128 or 256.
func (s Strength) Validate() error {
	switch s {
	case Strength128, Strength256:
		return nil
	default:
		return UnsupportedStrengthError{Strength: s}
	}
}

// Rate is the number of state bytes absorbed or squeezed per permutation.
// It is 1600 - 2*s bits.
func (s Strength) Rate() int {
	return (1600 - 2*int(s)) / 8
}

// Capacity is the number of state bytes which are never exposed.
func (s Strength) Capacity() int {
	return 2 * int(s) / 8
}

func (s Strength) String() string {
	switch s {
	case Strength128, Strength256:
		return fmt.Sprintf("SHAKE%d", int(s))
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}
