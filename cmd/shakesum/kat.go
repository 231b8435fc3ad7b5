package main

import (
	"bytes"
	"encoding/hex"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	shake "github.com/brendoncarroll/go-shake"
)

type vector struct {
	Strength shake.Strength
	Input    string
	Output   string
}

// vectors are FIPS 202 known answers.
var vectors = []vector{
	{
		Strength: shake.Strength128,
		Output:   "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26",
	},
	{
		Strength: shake.Strength256,
		Output: "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" +
			"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be",
	},
	{
		Strength: shake.Strength128,
		Input:    "The quick brown fox jumps over the lazy dog",
		Output:   "f4202e3c5852f9182a0430fd8144f0a74b95e7417ecae17db0f8cfeed0e3e66e",
	},
}

var katCmd = &cobra.Command{
	Use:   "kat",
	Short: "Check the implementation against known answer vectors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkVectors(vectors); err != nil {
			return err
		}
		cmd.Printf("%d vectors OK\n", len(vectors))
		return nil
	},
}

// checkVectors returns every mismatch, not just the first.
func checkVectors(vs []vector) error {
	var result error
	for i, v := range vs {
		if err := checkVector(v); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "vector %d %v(%q)", i, v.Strength, v.Input))
		}
	}
	return result
}

func checkVector(v vector) error {
	expected, err := hex.DecodeString(v.Output)
	if err != nil {
		return err
	}
	actual, err := shake.Compute(v.Strength, []byte(v.Input), len(expected))
	if err != nil {
		return err
	}
	if !bytes.Equal(expected, actual) {
		return errors.Errorf("HAVE: %x WANT: %x", actual, expected)
	}
	return nil
}
