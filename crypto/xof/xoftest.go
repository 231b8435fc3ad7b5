package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheme checks the properties every XOF must have.
func TestScheme[S any](t *testing.T, s Scheme[S]) {
	t.Run("NewReset", func(t *testing.T) {
		x := s.New()
		unused := s.New()

		s.Absorb(&x, []byte("input string"))
		s.Reset(&x)

		var expected, actual [64]byte
		s.Expand(&unused, expected[:])
		s.Expand(&x, actual[:])
		require.Equal(t, expected, actual)
	})
	t.Run("ResetAfterExpand", func(t *testing.T) {
		x := s.New()
		var before, after [32]byte
		s.Expand(&x, before[:])
		s.Reset(&x)
		s.Absorb(&x, nil)
		s.Expand(&x, after[:])
		require.Equal(t, before, after)
	})
	t.Run("AbsorbChunked", func(t *testing.T) {
		input := make([]byte, 1000)
		for i := range input {
			input[i] = byte(i)
		}
		expected := Sum512(s, input)
		for _, chunk := range []int{1, 7, 64, 136, 168, 999} {
			x := s.New()
			for in := input; len(in) > 0; {
				n := chunk
				if n > len(in) {
					n = len(in)
				}
				s.Absorb(&x, in[:n])
				in = in[n:]
			}
			var actual [64]byte
			s.Expand(&x, actual[:])
			require.Equal(t, expected, actual, "chunk=%d", chunk)
		}
	})
	t.Run("ExpandChunked", func(t *testing.T) {
		x := s.New()
		s.Absorb(&x, []byte("expand"))
		y := x
		expected := make([]byte, 700)
		s.Expand(&x, expected)

		actual := make([]byte, 0, 700)
		for _, n := range []int{0, 1, 135, 168, 200, 196} {
			buf := make([]byte, n)
			s.Expand(&y, buf)
			actual = append(actual, buf...)
		}
		require.Equal(t, expected, actual)
	})
	t.Run("AbsorbAfterExpand", func(t *testing.T) {
		x := s.New()
		var out [8]byte
		s.Expand(&x, out[:])
		require.Panics(t, func() { s.Absorb(&x, []byte{1}) })
	})
	t.Run("XOROut", func(t *testing.T) {
		x := s.New()
		s.Absorb(&x, []byte("key"))
		y := x
		ptext := []byte("a message which is longer than the internal buffer of XOROut, a message which is longer than the internal buffer of XOROut")
		ctext := make([]byte, len(ptext))
		XOROut(s, &x, ctext, ptext)
		require.NotEqual(t, ptext, ctext)

		ptext2 := make([]byte, len(ctext))
		XOROut(s, &y, ptext2, ctext)
		require.Equal(t, ptext, ptext2)
	})
}
