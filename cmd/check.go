package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clove-lang/clove/parser/parsec"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check files for well-formed syntax",
	Long:  `Check scans files with the combinator grammar without evaluating them.`,
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			b, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if _, err := parsec.Check(b); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed = true
				continue
			}
			fmt.Printf("%s: ok\n", path)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
