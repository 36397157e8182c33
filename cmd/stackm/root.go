package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezrec/stackm/console"
	"github.com/ezrec/stackm/session"
	"github.com/ezrec/stackm/translate"
)

var rootCmd = &cobra.Command{
	Use:   "stackm",
	Short: "An abstract stack machine simulator.",
	Long: `An abstract stack machine simulator for teaching.

Commands are read one per line: push VALUE, pop, add, sub, mul, div and
clear operate the machine; input TEXT stages a value for a bare push;
stack, log, state and help show the machine. quit ends the session.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		con := &console.Console{
			Input:  os.Stdin,
			Output: os.Stdout,
			Prompt: "stackm> ",
		}

		s, err := newSession(cmd, con)
		if err != nil {
			return err
		}

		return interact(s, con)
	},
}

func init() {
	addRootFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(runCmd, versionCmd)

	bindViper(rootCmd, runCmd)
}

// addRootFlags declares the flags shared by every command.
func addRootFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default: stackm.yaml in the config search path)")
	flags.BoolP("verbose", "v", false, "increase logging verbosity")
	flags.String("lang", "", "message language, as a BCP 47 tag (default: from the environment)")
	flags.String("color", "auto", "colorize output: auto, always or never")
	flags.Int("log-limit", 100, "maximum number of log entries kept")
	flags.Bool("strict", false, "stop a script at the first failing command")
}

// newSession configures logging, language and color from the flags, and
// creates a session writing to the console.
func newSession(cmd *cobra.Command, con *console.Console) (s *session.Session, err error) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	if lang := GetString(cmd, "lang"); len(lang) != 0 {
		tag, perr := translate.Parse(lang)
		if perr != nil {
			err = fmt.Errorf("--lang %v: %w", lang, perr)
			return
		}
		translate.SetLanguage(tag)
	}

	noColor, err := colorMode(GetString(cmd, "color"), con.Interactive())
	if err != nil {
		return
	}
	color.NoColor = noColor

	s = session.NewSession(con.Output, GetInt(cmd, "log-limit"))
	s.Strict = GetFlag(cmd, "strict")

	return
}

// colorMode returns the color.NoColor setting for a --color value.
func colorMode(mode string, interactive bool) (noColor bool, err error) {
	switch strings.ToLower(mode) {
	case "auto", "":
		noColor = color.NoColor || !interactive
	case "always":
		noColor = false
	case "never":
		noColor = true
	default:
		err = fmt.Errorf("--color %q: expected auto, always or never", mode)
	}

	return
}

// interact runs commands from the console until input ends or quit.
func interact(s *session.Session, con *console.Console) (err error) {
	s.Echo = true

	if con.Interactive() {
		s.RenderLog()
		s.RenderControls()
	}

	for line := range con.Lines() {
		words, werr := console.Words(line)
		if werr != nil {
			fmt.Fprintln(con.Output, werr)
			continue
		}
		if len(words) == 0 {
			continue
		}

		name := strings.ToLower(words[0])
		if name == "quit" || name == "exit" {
			break
		}

		xerr := s.Execute(words)
		report(con.Output, s, xerr)
	}

	return con.Err()
}

// report writes an error that the machine log has not already shown.
func report(w io.Writer, s *session.Session, err error) {
	if err == nil {
		return
	}

	latest, _ := s.Log.Latest()
	if latest.Failed() && errors.Is(err, latest.Err) {
		return
	}

	fmt.Fprintln(w, err)
}
