// Package xof_shake implements xof.Scheme with SHAKE128 and SHAKE256.
package xof_shake

import (
	shake "github.com/brendoncarroll/go-shake"
	"github.com/brendoncarroll/go-shake/crypto/xof"
)

// State is a SHAKE session in either phase.
// It is a plain value: copying it forks the session.
// The zero value is not usable, get States from New.
type State struct {
	abs       shake.Absorber
	sq        shake.Squeezer
	squeezing bool
}

func newState(a *shake.Absorber) State {
	return State{abs: *a}
}

func absorb(x *State, in []byte) {
	// Absorb on a finalized Absorber panics with shake.ErrProtocolViolation.
	x.abs.Absorb(in)
}

func expand(x *State, out []byte) {
	if !x.squeezing {
		x.sq = *x.abs.Finalize()
		x.squeezing = true
	}
	x.sq.SqueezeInto(out)
}

var (
	_ xof.Scheme[State] = SHAKE128{}
	_ xof.Scheme[State] = SHAKE256{}
)

type SHAKE128 struct{}

func (SHAKE128) New() State {
	return newState(shake.NewSHAKE128())
}

func (SHAKE128) Absorb(x *State, in []byte) {
	absorb(x, in)
}

func (SHAKE128) Expand(x *State, out []byte) {
	expand(x, out)
}

func (s SHAKE128) Reset(x *State) {
	*x = s.New()
}

type SHAKE256 struct{}

func (SHAKE256) New() State {
	return newState(shake.NewSHAKE256())
}

func (SHAKE256) Absorb(x *State, in []byte) {
	absorb(x, in)
}

func (SHAKE256) Expand(x *State, out []byte) {
	expand(x, out)
}

func (s SHAKE256) Reset(x *State) {
	*x = s.New()
}

// ForStrength returns the scheme for strength.
func ForStrength(strength shake.Strength) (xof.Scheme[State], error) {
	switch strength {
	case shake.Strength128:
		return SHAKE128{}, nil
	case shake.Strength256:
		return SHAKE256{}, nil
	default:
		return nil, strength.Validate()
	}
}
