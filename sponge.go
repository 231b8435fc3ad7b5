package shake

import (
	"github.com/brendoncarroll/go-shake/crypto/keccakf"
)

const (
	// padXOF is the SHAKE domain separation suffix 1111 followed by the first bit of pad10*1.
	padXOF = 0x1F
	// padLast is the final bit of pad10*1, the top bit of the last byte in the block.
	padLast = 0x80
)

// Permutation is an in place transform over the Keccak state.
// keccakf.F1600 is the implementation used unless a Config says otherwise.
type Permutation interface {
	Permute(x *keccakf.State1600)
}

// sponge holds the state shared by both phases of a session.
// pos is always < rate between calls.
type sponge struct {
	a    keccakf.State1600
	rate int
	pos  int
	perm Permutation
}

func newSponge(rate int, perm Permutation) sponge {
	return sponge{rate: rate, perm: perm}
}

// check panics if s was not created by newSponge.
func (s *sponge) check() {
	if s.rate <= 0 || s.perm == nil {
		panic("shake: use of uninitialized session, create sessions with New")
	}
}

func (s *sponge) permute() {
	s.perm.Permute(&s.a)
	s.pos = 0
}

func (s *sponge) absorb(data []byte) {
	s.check()
	for len(data) > 0 {
		n := s.rate - s.pos
		if n > len(data) {
			n = len(data)
		}
		keccakf.XORIn(&s.a, s.pos, data[:n])
		data = data[n:]
		s.pos += n
		if s.pos == s.rate {
			s.permute()
		}
	}
}

// pad applies the XOF padding at pos and permutes the final block.
func (s *sponge) pad() {
	s.check()
	keccakf.XORByte(&s.a, s.pos, padXOF)
	keccakf.XORByte(&s.a, s.rate-1, padLast)
	s.permute()
}

func (s *sponge) squeeze(dst []byte) {
	s.check()
	for len(dst) > 0 {
		n := s.rate - s.pos
		if n > len(dst) {
			n = len(dst)
		}
		keccakf.CopyOut(dst[:n], &s.a, s.pos)
		dst = dst[n:]
		s.pos += n
		if s.pos == s.rate {
			s.permute()
		}
	}
}
