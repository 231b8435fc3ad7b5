package shake

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/brendoncarroll/go-shake/crypto/keccakf"
)

// DefaultMaxOutput is the largest output Compute will allocate by default.
const DefaultMaxOutput = 1 << 30

// Config controls how sessions are created.
// The zero value is usable and equivalent to DefaultConfig.
type Config struct {
	// Permutation is applied to the state between blocks.
	// Defaults to keccakf.F1600.
	Permutation Permutation
	// MaxOutput bounds the output length accepted by Compute.
	// Defaults to DefaultMaxOutput.
	MaxOutput int
}

func DefaultConfig() Config {
	return Config{
		Permutation: keccakf.F1600{},
		MaxOutput:   DefaultMaxOutput,
	}
}

func (c Config) permutation() Permutation {
	if c.Permutation == nil {
		return keccakf.F1600{}
	}
	return c.Permutation
}

func (c Config) maxOutput() int {
	if c.MaxOutput <= 0 {
		return DefaultMaxOutput
	}
	return c.MaxOutput
}

// New returns an Absorber for strength using the configured permutation.
func (c Config) New(strength Strength) (*Absorber, error) {
	if err := strength.Validate(); err != nil {
		return nil, err
	}
	return newAbsorber(strength, c.permutation()), nil
}

// Compute absorbs input, finalizes, and squeezes outputLength bytes in one step.
// Output lengths above MaxOutput fail with ErrResourceExhausted.
func (c Config) Compute(strength Strength, input []byte, outputLength int) ([]byte, error) {
	a, err := c.New(strength)
	if err != nil {
		return nil, err
	}
	if outputLength < 0 {
		return nil, InvalidLengthError{Length: outputLength}
	}
	if limit := c.maxOutput(); outputLength > limit {
		log.WithFields(logrus.Fields{
			"strength":   strength,
			"output_len": humanize.IBytes(uint64(outputLength)),
			"max_output": humanize.IBytes(uint64(limit)),
		}).Debug("refusing compute")
		return nil, ResourceExhaustedError{Requested: outputLength, Max: limit}
	}
	a.Absorb(input)
	return a.Finalize().Squeeze(outputLength), nil
}
