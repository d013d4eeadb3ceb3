package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tinycat-basic/internal/config"
	langerr "github.com/cwbudde/tinycat-basic/internal/errors"
	"github.com/cwbudde/tinycat-basic/internal/interp"
	"github.com/cwbudde/tinycat-basic/internal/repl"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var traceFlag bool

var rootCmd = &cobra.Command{
	Use:   "tinycat [file ...]",
	Short: "A line-numbered BASIC interpreter",
	Long: `tinycat is an interpreter for a small line-numbered BASIC dialect:
line-numbered program storage, GOTO/GOSUB/RETURN, FOR/NEXT, DO/LOOP, and
single-expression user-defined functions.

With no file arguments it starts an interactive session. With one or
more file arguments, each is loaded as a program and run in turn.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadSession(os.Stderr)
		if traceFlag {
			cfg.Trace = true
		}
		if len(args) == 0 {
			return repl.New(os.Stdout, os.Stdin, cfg).Run()
		}

		reader := bufio.NewReader(os.Stdin)
		for _, path := range args {
			i := interp.New(os.Stdout, reader)
			if cfg.Trace {
				i.Trace = true
				i.Tracer = os.Stderr
			}
			if err := interp.LoadProgram(i, path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				return errSilent
			}
			if err := i.Run(); err != nil {
				if located, ok := err.(*langerr.Located); ok {
					fmt.Fprintln(os.Stderr, located.FormatWithContext())
				} else {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				}
				return errSilent
			}
			if i.Stopped() {
				return repl.Resume(os.Stdout, reader, cfg, i).Run()
			}
		}
		return nil
	},
}

// errSilent is returned by RunE after the failing command has already
// printed its own message to stderr; it only carries a non-zero exit
// code back to main, and cobra (SilenceErrors) never prints it itself.
var errSilent = fmt.Errorf("")

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "print each executed line number to stderr")
}
