package shake

import (
	"errors"
	"fmt"

	"github.com/brendoncarroll/go-shake/oids"
)

var (
	ErrUnsupportedStrength = errors.New("shake: unsupported security strength")
	ErrResourceExhausted   = errors.New("shake: output length exceeds allocation limit")
	ErrInvalidLength       = errors.New("shake: invalid output length")
	// ErrProtocolViolation is the panic value when a finalized Absorber is used.
	ErrProtocolViolation = errors.New("shake: session used after finalize")
)

type UnsupportedStrengthError struct {
	Strength Strength
}

func (e UnsupportedStrengthError) Error() string {
	return fmt.Sprintf("shake: unsupported security strength %d, must be 128 or 256", int(e.Strength))
}

func (e UnsupportedStrengthError) Is(target error) bool {
	return target == ErrUnsupportedStrength
}

type ResourceExhaustedError struct {
	Requested int
	Max       int
}

func (e ResourceExhaustedError) Error() string {
	return fmt.Sprintf("shake: output length %d exceeds limit %d", e.Requested, e.Max)
}

func (e ResourceExhaustedError) Is(target error) bool {
	return target == ErrResourceExhausted
}

type InvalidLengthError struct {
	Length int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("shake: invalid output length %d", e.Length)
}

func (e InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

func IsErrUnsupportedStrength(err error) bool {
	return errors.Is(err, ErrUnsupportedStrength)
}

func IsErrResourceExhausted(err error) bool {
	return errors.Is(err, ErrResourceExhausted)
}

func IsErrInvalidLength(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

func IsErrProtocolViolation(err error) bool {
	return errors.Is(err, ErrProtocolViolation)
}

type ErrUnrecognizedOID struct {
	OID oids.OID
}

func (e ErrUnrecognizedOID) Error() string {
	return fmt.Sprintf("shake: unrecognized algorithm: %v", e.OID)
}
