// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script parses command scripts for the stack machine.
//
// A script holds one command per line, using the same commands as the
// interactive session: push VALUE, pop, add, sub, mul, div and clear.
// Text after ';' is a comment. The directives '.equ NAME VALUE' and
// '.macro NAME ARGS...' / '.endm' define constants and reusable command
// sequences, and '$(...)' is evaluated as a starlark expression when the
// line is parsed.
package script

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/stackm/internal"
	"github.com/ezrec/stackm/machine"
)

// Macro represents a macro definition.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"PI": machine.FormatNumber(math.Pi),
	"E":  machine.FormatNumber(math.E),
}

var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// Parser is a single pass macro expanding parser for command scripts.
type Parser struct {
	Lines []Line // List of parsed commands.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (p *Parser) valueOf(word string) (value float64, err error) {
	value, err = machine.ParseNumber(word)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// starlarkValue converts an equate to an int when it has an exact integer value.
func starlarkValue(value float64) starlark.Value {
	if !math.IsInf(value, 0) && value == math.Trunc(value) && math.Abs(value) < (1<<53) {
		return starlark.MakeInt64(int64(value))
	}
	return starlark.Float(value)
}

// parenEval does parse-time $(...) evaluations
func (p *Parser) parenEval(expr string) (value float64, err error) {
	thread := &starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		number, perr := machine.ParseNumber(str)
		if perr != nil {
			// Ignore non-numeric equates. They may be command names.
			continue
		}
		pred[key] = starlarkValue(number)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Float:
		value = float64(rc)
	case starlark.Int:
		value = float64(rc.Float())
	default:
		err = ErrParseExpression(expr)
	}

	return
}

// expand replaces each $(...) in line with its value.
func (p *Parser) expand(line string) (expanded string, err error) {
	expanded = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, eerr := p.parenEval(str[2 : len(str)-1])
		if eerr != nil && err == nil {
			err = eerr
		}
		return machine.FormatNumber(value)
	})

	return
}

// define handles '.equ NAME VALUE'. Equates may not be redefined.
func (p *Parser) define(words []string) error {
	if len(words) != 3 {
		return ErrEquateSyntax
	}
	if _, ok := p.Equate[words[1]]; ok {
		return ErrEquateDuplicate
	}
	p.Equate[words[1]] = words[2]

	return nil
}

// expandMacro parses the macro body with its arguments bound as equates.
func (p *Parser) expandMacro(name string, macro *Macro, args []string) (err error) {
	if len(args) != len(macro.Args) {
		return ErrMacroSyntax
	}

	saved := maps.Clone(p.Equate)
	defer func() { p.Equate = saved }()
	for n, arg := range macro.Args {
		p.Equate[arg] = args[n]
	}

	for n, body := range macro.Lines {
		lineno := macro.LineNo + n
		err = p.parseLine(body, lineno)
		if err != nil {
			return &ErrMacro{Macro: name, Line: lineno, Err: err}
		}
	}

	return
}

// parseLine expands a single line and adds the commands it produces.
func (p *Parser) parseLine(line string, lineno int) (err error) {
	line, err = p.expand(line)
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	if words[0] == ".equ" {
		return p.define(words)
	}

	for n, word := range words {
		if value, ok := p.Equate[word]; ok {
			words[n] = value
		}
	}

	if macro, ok := p.Macro[words[0]]; ok {
		return p.expandMacro(words[0], macro, words[1:])
	}

	return p.parseWords(words, lineno)
}

// Parse parses an input stream into a Program.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	p.Lines = p.Lines[:0]
	if p.Macro == nil {
		p.Macro = make(map[string](*Macro))
	}
	clear(p.Macro)
	p.Equate = maps.Collect(internal.Concat2(maps.All(sysEquate), maps.All(p.predefine)))

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(text_comment)
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := p.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			p.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		err = p.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	prog = &Program{
		Lines: slices.Clone(p.Lines),
	}

	return
}
