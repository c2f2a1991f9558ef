package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clove-lang/clove/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive interpreter",
	Run: func(cmd *cobra.Command, args []string) {
		interp, err := newInterp()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := repl.Run(cfg.Prompt, interp); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
