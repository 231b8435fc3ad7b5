// Package shake implements the SHAKE128 and SHAKE256 extendable-output functions from FIPS 202.
//
// A session starts as an Absorber.  Input is fed with Absorb, then Finalize pads the input
// and returns a Squeezer, from which any amount of output can be read.
// Output only depends on the strength, the concatenated input and the total number of bytes read,
// not on how either was split across calls.
package shake

import (
	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-shake/crypto/keccakf"
)

// Absorber is a session in the absorbing phase.
// The zero value is not usable; create Absorbers with New.
type Absorber struct {
	s        sponge
	strength Strength
	done     bool
}

// New returns an Absorber for strength, which must be 128 or 256.
func New(strength Strength) (*Absorber, error) {
	return DefaultConfig().New(strength)
}

// NewSHAKE128 returns an Absorber for SHAKE128.
func NewSHAKE128() *Absorber {
	return newAbsorber(Strength128, keccakf.F1600{})
}

// NewSHAKE256 returns an Absorber for SHAKE256.
func NewSHAKE256() *Absorber {
	return newAbsorber(Strength256, keccakf.F1600{})
}

func newAbsorber(strength Strength, perm Permutation) *Absorber {
	return &Absorber{
		s:        newSponge(strength.Rate(), perm),
		strength: strength,
	}
}

// Strength returns the security strength the session was created with.
func (a *Absorber) Strength() Strength {
	return a.strength
}

// Absorb appends data to the input.
func (a *Absorber) Absorb(data []byte) {
	a.checkLive("Absorb")
	a.s.absorb(data)
}

// Write implements io.Writer.  It never returns an error.
func (a *Absorber) Write(p []byte) (int, error) {
	a.Absorb(p)
	return len(p), nil
}

// Finalize pads the input and moves the session into the squeezing phase.
// The Absorber must not be used afterwards.
func (a *Absorber) Finalize() *Squeezer {
	a.checkLive("Finalize")
	s := a.s
	s.pad()
	a.done = true
	a.s.a = keccakf.State1600{}
	return &Squeezer{s: s, strength: a.strength}
}

// Clone returns an independent copy of a.
func (a *Absorber) Clone() *Absorber {
	a.checkLive("Clone")
	a2 := *a
	return &a2
}

func (a *Absorber) checkLive(op string) {
	if a.done {
		panic(errors.Wrapf(ErrProtocolViolation, "%s on finalized %v session", op, a.strength))
	}
}

// Squeezer is a session in the squeezing phase.
// The zero value is not usable; Squeezers come from Absorber.Finalize.
type Squeezer struct {
	s        sponge
	strength Strength
}

// Strength returns the security strength the session was created with.
func (s *Squeezer) Strength() Strength {
	return s.strength
}

// SqueezeInto fills dst with the next len(dst) bytes of output.
func (s *Squeezer) SqueezeInto(dst []byte) {
	s.s.squeeze(dst)
}

// Squeeze returns the next n bytes of output.
// It panics if n is negative.
func (s *Squeezer) Squeeze(n int) []byte {
	if n < 0 {
		panic(errors.Errorf("shake: negative squeeze length %d", n))
	}
	out := make([]byte, n)
	s.s.squeeze(out)
	return out
}

// Read implements io.Reader.  It always fills p and never returns an error.
func (s *Squeezer) Read(p []byte) (int, error) {
	s.s.squeeze(p)
	return len(p), nil
}

// Clone returns an independent copy of s.
func (s *Squeezer) Clone() *Squeezer {
	s2 := *s
	return &s2
}

// Compute returns outputLength bytes of SHAKE output for input.
func Compute(strength Strength, input []byte, outputLength int) ([]byte, error) {
	return DefaultConfig().Compute(strength, input, outputLength)
}

// Sum128 writes the SHAKE128 output for in to dst.
func Sum128(dst, in []byte) {
	sum(Strength128, dst, in)
}

// Sum256 writes the SHAKE256 output for in to dst.
func Sum256(dst, in []byte) {
	sum(Strength256, dst, in)
}

func sum(strength Strength, dst, in []byte) {
	a := newAbsorber(strength, keccakf.F1600{})
	a.Absorb(in)
	a.Finalize().SqueezeInto(dst)
}
