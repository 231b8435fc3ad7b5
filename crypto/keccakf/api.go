package keccakf

// State1600 is the 1600 bit Keccak state, as 25 little-endian lanes.
type State1600 = [25]uint64

// StateSize is the size of State1600 in bytes.
const StateSize = 200

// Permute1600 applies KeccakF1600 to x inplace.
func Permute1600(x *State1600) {
	keccakF1600(x)
}

// F1600 is the KeccakF1600 permutation as a value.
type F1600 struct{}

func (F1600) Permute(x *State1600) {
	keccakF1600(x)
}
