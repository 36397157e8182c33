package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/stackm/console"
	"github.com/ezrec/stackm/script"
	"github.com/ezrec/stackm/session"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] script_file(s)",
	Short: "replay command scripts.",
	Long: `Replay one or more command scripts on a single machine, then show the
final stack and log. A script file of '-' is read from standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		con := &console.Console{Input: os.Stdin, Output: os.Stdout}

		s, err := newSession(cmd, con)
		if err != nil {
			return err
		}

		p := &script.Parser{}
		for _, define := range GetStringArray(cmd, "define") {
			name, value, err := parseDefine(define)
			if err != nil {
				return err
			}
			p.Predefine(name, value)
		}

		opts := runOptions{
			List:  GetFlag(cmd, "list"),
			State: GetFlag(cmd, "state"),
			Stdin: os.Stdin,
		}

		return runScripts(s, p, args, opts)
	},
}

func init() {
	runCmd.Flags().StringArrayP("define", "D", []string{}, "predefine NAME=VALUE for scripts")
	runCmd.Flags().Bool("list", false, "list the expanded scripts instead of running them")
	runCmd.Flags().Bool("state", false, "write the final state as YAML")
}

type runOptions struct {
	List  bool
	State bool
	Stdin io.Reader
}

// parseDefine splits a NAME=VALUE predefine.
func parseDefine(define string) (name, value string, err error) {
	name, value, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 || len(value) == 0 {
		err = fmt.Errorf("define %q: expected NAME=VALUE", define)
	}
	return
}

// parseFile parses a script file, or standard input for '-'.
func parseFile(p *script.Parser, file string, stdin io.Reader) (prog *script.Program, err error) {
	if file == "-" {
		return p.Parse(stdin)
	}

	inf, err := os.Open(file)
	if err != nil {
		return
	}
	defer inf.Close()

	return p.Parse(inf)
}

// runScripts replays each script in turn on the session, then writes the
// final stack and log.
func runScripts(s *session.Session, p *script.Parser, files []string, opts runOptions) (err error) {
	for _, file := range files {
		var prog *script.Program
		prog, err = parseFile(p, file, opts.Stdin)
		if err != nil {
			return fmt.Errorf("%v: %w", file, err)
		}

		if opts.List {
			fmt.Fprint(s.Output, prog)
			continue
		}

		err = s.Run(prog)
		if err != nil {
			return fmt.Errorf("%v: %w", file, err)
		}
	}

	if opts.List {
		return
	}

	if opts.State {
		return s.WriteState()
	}

	err = s.RenderStack()
	if err != nil {
		return
	}
	fmt.Fprintln(s.Output)

	return s.RenderLog()
}
