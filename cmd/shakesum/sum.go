package main

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	shake "github.com/brendoncarroll/go-shake"
)

var (
	strengthFlag  int
	lengthFlag    string
	maxOutputFlag string
)

func sumFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&strengthFlag, "strength", "s", 256, "security strength in bits, 128 or 256")
	cmd.Flags().StringVarP(&lengthFlag, "length", "n", "", "output length, e.g. 64 or 1KiB (default 2*strength bits)")
	cmd.Flags().StringVar(&maxOutputFlag, "max-output", humanize.IBytes(shake.DefaultMaxOutput), "largest accepted output length")
}

type sumParams struct {
	Strength  shake.Strength
	Length    int
	MaxOutput int
}

func sumParamsFromFlags() (sumParams, error) {
	return parseSumParams(strengthFlag, lengthFlag, maxOutputFlag)
}

func parseSumParams(strength int, length, maxOutput string) (sumParams, error) {
	p := sumParams{Strength: shake.Strength(strength)}
	if err := p.Strength.Validate(); err != nil {
		return sumParams{}, err
	}
	maxOut, err := humanize.ParseBytes(maxOutput)
	if err != nil {
		return sumParams{}, errors.Wrapf(err, "parsing --max-output %q", maxOutput)
	}
	if maxOut == 0 || maxOut > math.MaxInt {
		return sumParams{}, errors.Errorf("--max-output %q out of range", maxOutput)
	}
	p.MaxOutput = int(maxOut)

	p.Length = p.Strength.Capacity()
	if length != "" {
		n, err := humanize.ParseBytes(length)
		if err != nil {
			return sumParams{}, errors.Wrapf(err, "parsing --length %q", length)
		}
		if n > uint64(p.MaxOutput) {
			if n > math.MaxInt {
				n = math.MaxInt
			}
			return sumParams{}, shake.ResourceExhaustedError{Requested: int(n), Max: p.MaxOutput}
		}
		p.Length = int(n)
	}
	return p, nil
}

type sumResult struct {
	Name   string
	Output []byte
}

// sumFiles digests each named input in its own session, concurrently.
// "-" names stdin, which is read once up front and shared by every "-".
// Results are in the order of names.
func sumFiles(ctx context.Context, p sumParams, names []string, stdin io.Reader) ([]sumResult, error) {
	var stdinData []byte
	if slices.Contains(names, "-") {
		data, err := io.ReadAll(ctxReader{ctx: ctx, r: stdin})
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		stdinData = data
	}
	results := make([]sumResult, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			out, err := sumFile(ctx, p, name, stdinData)
			if err != nil {
				return err
			}
			results[i] = sumResult{Name: name, Output: out}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sumFile(ctx context.Context, p sumParams, name string, stdinData []byte) ([]byte, error) {
	var r io.Reader
	if name == "-" {
		r = bytes.NewReader(stdinData)
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", name)
		}
		defer f.Close()
		r = f
	}
	out, n, err := sumReader(ctx, p, r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	log.WithFields(logrus.Fields{
		"input":    name,
		"size":     humanize.IBytes(uint64(n)),
		"strength": p.Strength,
	}).Debug("digested")
	return out, nil
}

func sumReader(ctx context.Context, p sumParams, r io.Reader) ([]byte, int64, error) {
	if p.Length < 0 {
		return nil, 0, shake.InvalidLengthError{Length: p.Length}
	}
	if p.Length > p.MaxOutput {
		return nil, 0, shake.ResourceExhaustedError{Requested: p.Length, Max: p.MaxOutput}
	}
	a, err := shake.New(p.Strength)
	if err != nil {
		return nil, 0, err
	}
	n, err := io.Copy(a, ctxReader{ctx: ctx, r: r})
	if err != nil {
		return nil, n, err
	}
	return a.Finalize().Squeeze(p.Length), n, nil
}

// ctxReader stops reading once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
