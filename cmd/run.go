package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run clove code",
	Long:  `Run clove code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		names, exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		interp, err := newInterp()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i := range exprs {
			v, err := interp.RunNamed(names[i], string(exprs[i]))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if runPrint {
				fmt.Println(v)
			}
		}
	},
}

func runReadExpressions(args []string) ([]string, [][]byte, error) {
	names := make([]string, len(args))
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			names[i] = fmt.Sprintf("<arg %d>", i+1)
			exprs[i] = []byte(args[i])
		}
		return names, exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		names[i] = path
		exprs[i] = b
	}
	return names, exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as clove expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
