package main

import (
	"os"

	shake "github.com/brendoncarroll/go-shake"
	"github.com/spf13/cobra"
)

var log = shake.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides $"+shake.LogEnv)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		return shake.SetLogLevel(logLevel)
	}

	sumFlags(rootCmd)
	rootCmd.AddCommand(katCmd)
	rootCmd.AddCommand(oidCmd)
	rootCmd.SetOut(os.Stdout)
}

var rootCmd = &cobra.Command{
	Use:   "shakesum [FILE]...",
	Short: "Print SHAKE128 or SHAKE256 output for files, or stdin when no file or - is given",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := sumParamsFromFlags()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{"-"}
		}
		results, err := sumFiles(cmd.Context(), p, args, os.Stdin)
		if err != nil {
			return err
		}
		for _, r := range results {
			cmd.Printf("%x  %s\n", r.Output, r.Name)
		}
		return nil
	},
}
