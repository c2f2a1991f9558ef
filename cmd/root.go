package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clove-lang/clove/lisp"
	"github.com/clove-lang/clove/parser"
)

var cfgFile string

// config holds the optional settings read from the YAML config file.
type config struct {
	Prompt   string `yaml:"prompt"`
	MaxDepth int    `yaml:"max-depth"`
}

var cfg = config{
	Prompt:   "> ",
	MaxDepth: lisp.DefaultMaxDepth,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clove",
	Short: "The clove interpreter",
	Long:  `clove is a small dynamically-typed lisp. See the run, repl, and check subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.  It is called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.clove.yaml)")
}

// initConfig reads the config file when one is given or present in the
// default location.  A missing default file is not an error.
func initConfig() error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".clove.yaml")
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, &cfg)
}

// newInterp constructs the interpreter shared by the run and repl commands:
// a fresh global scope with the default natives bound.
func newInterp() (*lisp.Interp, error) {
	globals := lisp.NewScope(nil)
	globals.AddNatives()
	globals.AddNatives(lisp.GlobalDef(globals))
	return parser.NewInterpreter(globals, lisp.WithMaxDepth(cfg.MaxDepth))
}
