package shake

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/brendoncarroll/go-shake/crypto/keccakf"
)

func TestKnownAnswers(t *testing.T) {
	tcs := []struct {
		Strength Strength
		Input    string
		Output   string
	}{
		{
			Strength: Strength128,
			Input:    "",
			Output:   "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26",
		},
		{
			Strength: Strength256,
			Input:    "",
			Output: "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
				"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be",
		},
		{
			Strength: Strength128,
			Input:    "The quick brown fox jumps over the lazy dog",
			Output:   "f4202e3c5852f9182a0430fd8144f0a74b95e7417ecae17db0f8cfeed0e3e66e",
		},
	}
	for _, tc := range tcs {
		expected, err := hex.DecodeString(tc.Output)
		require.NoError(t, err)

		a, err := New(tc.Strength)
		require.NoError(t, err)
		a.Absorb([]byte(tc.Input))
		actual := a.Finalize().Squeeze(len(expected))
		require.Equal(t, expected, actual, "%v(%q)", tc.Strength, tc.Input)

		actual, err = Compute(tc.Strength, []byte(tc.Input), len(expected))
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}
}

func TestMatchesStandard(t *testing.T) {
	for _, strength := range []Strength{Strength128, Strength256} {
		for _, n := range inputLengths(strength) {
			input := testInput(n)
			expected := make([]byte, 3*strength.Rate()+5)
			switch strength {
			case Strength128:
				sha3.ShakeSum128(expected, input)
			case Strength256:
				sha3.ShakeSum256(expected, input)
			}
			actual, err := Compute(strength, input, len(expected))
			require.NoError(t, err)
			require.Equal(t, expected, actual, "%v len=%d", strength, n)
		}
	}
}

func TestSumHelpers(t *testing.T) {
	input := []byte("hello world")
	var expected, actual [100]byte

	sha3.ShakeSum128(expected[:], input)
	Sum128(actual[:], input)
	require.Equal(t, expected, actual)

	sha3.ShakeSum256(expected[:], input)
	Sum256(actual[:], input)
	require.Equal(t, expected, actual)
}

func TestUnsupportedStrength(t *testing.T) {
	for _, s := range []Strength{0, -1, -128, 1, 127, 129, 192, 224, 255, 384, 512, 1600} {
		a, err := New(s)
		require.Nil(t, a)
		require.Error(t, err)
		require.True(t, IsErrUnsupportedStrength(err), "strength=%d", s)

		out, err := Compute(s, []byte("abc"), 32)
		require.Nil(t, out)
		require.True(t, IsErrUnsupportedStrength(err))
		require.False(t, IsErrResourceExhausted(err))
	}
}

func TestRate(t *testing.T) {
	require.Equal(t, 168, Strength128.Rate())
	require.Equal(t, 136, Strength256.Rate())
	require.Equal(t, 32, Strength128.Capacity())
	require.Equal(t, 64, Strength256.Capacity())
	require.Equal(t, keccakf.StateSize, Strength128.Rate()+Strength128.Capacity())
	require.Equal(t, "SHAKE128", Strength128.String())
	require.Equal(t, "SHAKE256", Strength256.String())
}

func TestChunkingInvariance(t *testing.T) {
	for _, strength := range []Strength{Strength128, Strength256} {
		input := testInput(2*strength.Rate() + 3)
		expected, err := Compute(strength, input, 64)
		require.NoError(t, err)
		for split := 0; split <= len(input); split++ {
			a, err := New(strength)
			require.NoError(t, err)
			a.Absorb(input[:split])
			a.Absorb(input[split:])
			require.Equal(t, expected, a.Finalize().Squeeze(64), "%v split=%d", strength, split)
		}
	}
}

func TestByteAtATime(t *testing.T) {
	input := testInput(500)
	expected, err := Compute(Strength256, input, 500)
	require.NoError(t, err)

	a := NewSHAKE256()
	for i := range input {
		a.Absorb(input[i : i+1])
	}
	s := a.Finalize()
	actual := make([]byte, 0, 500)
	for i := 0; i < 500; i++ {
		actual = append(actual, s.Squeeze(1)...)
	}
	require.Equal(t, expected, actual)
}

func TestSqueezeComposable(t *testing.T) {
	for _, strength := range []Strength{Strength128, Strength256} {
		a, err := New(strength)
		require.NoError(t, err)
		a.Absorb([]byte("composable"))
		s := a.Finalize()
		total := 2*strength.Rate() + 1
		expected := s.Clone().Squeeze(total)
		for n1 := 0; n1 <= total; n1++ {
			s2 := s.Clone()
			out := append(s2.Squeeze(n1), s2.Squeeze(total-n1)...)
			require.Equal(t, expected, out, "%v n1=%d", strength, n1)
		}
	}
}

func TestSqueezeZero(t *testing.T) {
	s := NewSHAKE128().Finalize()
	require.Empty(t, s.Squeeze(0))
	require.Equal(t, mustCompute(t, Strength128, nil, 32), s.Squeeze(32))

	out, err := Compute(Strength128, []byte("x"), 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDeterminism(t *testing.T) {
	input := testInput(1000)
	for _, strength := range []Strength{Strength128, Strength256} {
		a1, err := New(strength)
		require.NoError(t, err)
		a2, err := New(strength)
		require.NoError(t, err)
		a1.Absorb(input)
		a2.Absorb(input)
		require.Equal(t, a1.Finalize().Squeeze(777), a2.Finalize().Squeeze(777))
	}
	require.NotEqual(t, mustCompute(t, Strength128, input, 32), mustCompute(t, Strength256, input, 32))
}

func TestOutputLengthPrefix(t *testing.T) {
	// shorter outputs are prefixes of longer ones
	input := []byte("prefix")
	long := mustCompute(t, Strength256, input, 1000)
	for _, n := range []int{1, 31, 135, 136, 137, 999} {
		require.Equal(t, long[:n], mustCompute(t, Strength256, input, n))
	}
}

func TestBlockBoundaries(t *testing.T) {
	for _, strength := range []Strength{Strength128, Strength256} {
		for _, n := range inputLengths(strength) {
			input := testInput(n)
			expected := make([]byte, 200)
			switch strength {
			case Strength128:
				sha3.ShakeSum128(expected, input)
			case Strength256:
				sha3.ShakeSum256(expected, input)
			}

			p := &countingPermutation{}
			a, err := Config{Permutation: p}.New(strength)
			require.NoError(t, err)
			a.Absorb(input)
			require.Equal(t, n/strength.Rate(), p.n, "%v len=%d", strength, n)
			require.Less(t, a.s.pos, strength.Rate())

			s := a.Finalize()
			require.Equal(t, n/strength.Rate()+1, p.n)
			require.Equal(t, 0, s.s.pos)
			require.Equal(t, expected, s.Squeeze(len(expected)), "%v len=%d", strength, n)
		}
	}
}

func TestPadSingleByte(t *testing.T) {
	// when the pad start and end share a byte both bits land in it
	for _, strength := range []Strength{Strength128, Strength256} {
		rate := strength.Rate()
		a, err := Config{Permutation: nopPermutation{}}.New(strength)
		require.NoError(t, err)
		a.Absorb(make([]byte, rate-1))
		s := a.Finalize()

		block := make([]byte, rate)
		s.SqueezeInto(block)
		expected := make([]byte, rate)
		expected[rate-1] = padXOF | padLast
		require.Equal(t, expected, block)
	}
}

func TestPadBytes(t *testing.T) {
	a, err := Config{Permutation: nopPermutation{}}.New(Strength256)
	require.NoError(t, err)
	a.Absorb([]byte{0xAA, 0xBB})
	block := a.Finalize().Squeeze(Strength256.Rate())
	require.Equal(t, []byte{0xAA, 0xBB, 0x1F}, block[:3])
	require.Equal(t, byte(0x80), block[len(block)-1])
	require.Equal(t, make([]byte, len(block)-4), block[3:len(block)-1])
}

func TestAbsorbEmpty(t *testing.T) {
	p := &countingPermutation{}
	a, err := Config{Permutation: p}.New(Strength128)
	require.NoError(t, err)
	a.Absorb(nil)
	a.Absorb([]byte{})
	require.Equal(t, 0, p.n)
	require.Equal(t, 0, a.s.pos)
	require.Equal(t, keccakf.State1600{}, a.s.a)
}

func TestFinalizeTwice(t *testing.T) {
	a := NewSHAKE128()
	a.Finalize()
	requirePanicsWith(t, ErrProtocolViolation, func() { a.Finalize() })
	requirePanicsWith(t, ErrProtocolViolation, func() { a.Absorb([]byte("late")) })
	requirePanicsWith(t, ErrProtocolViolation, func() { a.Write([]byte("late")) })
	requirePanicsWith(t, ErrProtocolViolation, func() { a.Clone() })
}

func TestZeroValueSession(t *testing.T) {
	const msg = "shake: use of uninitialized session, create sessions with New"
	require.PanicsWithValue(t, msg, func() {
		var a Absorber
		a.Absorb([]byte{1})
	})
	require.PanicsWithValue(t, msg, func() {
		var a Absorber
		a.Absorb(nil)
	})
	require.PanicsWithValue(t, msg, func() {
		var a Absorber
		a.Finalize()
	})
	require.PanicsWithValue(t, msg, func() {
		var s Squeezer
		s.Squeeze(1)
	})
	require.PanicsWithValue(t, msg, func() {
		var s Squeezer
		s.SqueezeInto(nil)
	})
}

func TestSqueezeNegative(t *testing.T) {
	s := NewSHAKE256().Finalize()
	require.Panics(t, func() { s.Squeeze(-1) })
}

func TestComputeLimits(t *testing.T) {
	_, err := Compute(Strength128, nil, -1)
	require.True(t, IsErrInvalidLength(err))

	cfg := Config{MaxOutput: 16}
	out, err := cfg.Compute(Strength256, nil, 16)
	require.NoError(t, err)
	require.Len(t, out, 16)

	out, err = cfg.Compute(Strength256, nil, 17)
	require.Nil(t, out)
	require.True(t, IsErrResourceExhausted(err))
	require.False(t, IsErrUnsupportedStrength(err))

	// strength is checked first
	_, err = cfg.Compute(512, nil, 17)
	require.True(t, IsErrUnsupportedStrength(err))
}

func TestIO(t *testing.T) {
	input := testInput(1234)
	a := NewSHAKE128()
	_, err := io.Copy(a, bytes.NewReader(input))
	require.NoError(t, err)

	out := make([]byte, 999)
	_, err = io.ReadFull(a.Finalize(), out)
	require.NoError(t, err)
	require.Equal(t, mustCompute(t, Strength128, input, 999), out)
}

func TestCloneAbsorber(t *testing.T) {
	a := NewSHAKE256()
	a.Absorb([]byte("common prefix"))
	b := a.Clone()
	a.Absorb([]byte{0})
	b.Absorb([]byte{1})
	outA := a.Finalize().Squeeze(32)
	outB := b.Finalize().Squeeze(32)
	require.NotEqual(t, outA, outB)
	require.Equal(t, mustCompute(t, Strength256, []byte("common prefix\x00"), 32), outA)
	require.Equal(t, mustCompute(t, Strength256, []byte("common prefix\x01"), 32), outB)
}

func TestOIDs(t *testing.T) {
	der, err := Strength128.OID().MarshalDER()
	require.NoError(t, err)
	require.Equal(t, []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0B}, der)
	der, err = Strength256.OID().MarshalDER()
	require.NoError(t, err)
	require.Equal(t, []byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0C}, der)

	for _, s := range []Strength{Strength128, Strength256} {
		s2, err := StrengthFromOID(s.OID())
		require.NoError(t, err)
		require.Equal(t, s, s2)
	}
	require.True(t, Strength(512).OID().IsZero())
	_, err = StrengthFromOID(Strength(512).OID())
	require.Error(t, err)
}

func FuzzChunking(f *testing.F) {
	f.Add([]byte("hello world"), uint(5), uint(10), uint(3))
	f.Add(make([]byte, 300), uint(136), uint(168), uint(137))
	f.Fuzz(func(t *testing.T, input []byte, split, n1, n2 uint) {
		split %= uint(len(input) + 1)
		n1 %= 512
		n2 %= 512
		for _, strength := range []Strength{Strength128, Strength256} {
			expected := mustCompute(t, strength, input, int(n1+n2))

			a, err := New(strength)
			require.NoError(t, err)
			a.Absorb(input[:split])
			a.Absorb(input[split:])
			s := a.Finalize()
			actual := append(s.Squeeze(int(n1)), s.Squeeze(int(n2))...)
			if !bytes.Equal(expected, actual) {
				t.Errorf("%v: chunked output differs split=%d n1=%d n2=%d", strength, split, n1, n2)
			}
		}
	})
}

func BenchmarkAbsorb(b *testing.B) {
	for _, strength := range []Strength{Strength128, Strength256} {
		b.Run(strength.String(), func(b *testing.B) {
			buf := make([]byte, 1<<14)
			b.SetBytes(int64(len(buf)))
			a, _ := New(strength)
			for i := 0; i < b.N; i++ {
				a.Absorb(buf)
			}
		})
	}
}

func BenchmarkSqueeze(b *testing.B) {
	for _, strength := range []Strength{Strength128, Strength256} {
		b.Run(strength.String(), func(b *testing.B) {
			buf := make([]byte, 1<<14)
			b.SetBytes(int64(len(buf)))
			a, _ := New(strength)
			s := a.Finalize()
			for i := 0; i < b.N; i++ {
				s.SqueezeInto(buf)
			}
		})
	}
}

type countingPermutation struct {
	n int
}

func (p *countingPermutation) Permute(x *keccakf.State1600) {
	p.n++
	keccakf.Permute1600(x)
}

// nopPermutation leaves the state untouched, exposing the padded block.
type nopPermutation struct{}

func (nopPermutation) Permute(x *keccakf.State1600) {}

func mustCompute(t testing.TB, strength Strength, input []byte, n int) []byte {
	out, err := Compute(strength, input, n)
	require.NoError(t, err)
	return out
}

func testInput(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*31 + 7)
	}
	return out
}

func inputLengths(s Strength) []int {
	r := s.Rate()
	return []int{0, 1, r - 2, r - 1, r, r + 1, 2*r - 1, 2 * r, 2*r + 1, 5 * r}
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, target)
		require.True(t, IsErrProtocolViolation(err))
	}()
	fn()
}
