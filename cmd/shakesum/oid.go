package main

import (
	"github.com/spf13/cobra"

	shake "github.com/brendoncarroll/go-shake"
)

var oidCmd = &cobra.Command{
	Use:   "oid",
	Short: "Print the object identifiers of SHAKE128 and SHAKE256",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range []shake.Strength{shake.Strength128, shake.Strength256} {
			der, err := s.OID().MarshalDER()
			if err != nil {
				return err
			}
			cmd.Printf("%v %v %x\n", s, s.OID(), der)
		}
		return nil
	},
}
