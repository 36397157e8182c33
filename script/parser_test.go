package script

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/stackm/machine"
	"github.com/ezrec/stackm/translate"
)

func TestMain(m *testing.M) {
	translate.SetLanguage(language.AmericanEnglish)
	os.Exit(m.Run())
}

func parse(t *testing.T, program ...string) *Program {
	p := &Parser{}
	prog, err := p.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestParser_Empty(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	prog, err := p.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))

	assert.Equal("3.141592653589793", p.Equate["PI"])
	assert.Equal("2.718281828459045", p.Equate["E"])
}

func TestParser_Commands(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t,
		"; (5 + 3) * 2",
		"push 5",
		"PUSH 3   ; second operand",
		"",
		"add",
		"push 2",
		"Mul",
		"pop",
		"div",
		"sub",
		"clear",
	)

	expected := []Line{
		{2, []string{"push", "5"}, machine.OP_PUSH, "5"},
		{3, []string{"PUSH", "3"}, machine.OP_PUSH, "3"},
		{5, []string{"add"}, machine.OP_ADD, ""},
		{6, []string{"push", "2"}, machine.OP_PUSH, "2"},
		{7, []string{"Mul"}, machine.OP_MUL, ""},
		{8, []string{"pop"}, machine.OP_POP, ""},
		{9, []string{"div"}, machine.OP_DIV, ""},
		{10, []string{"sub"}, machine.OP_SUB, ""},
		{11, []string{"clear"}, machine.OP_CLEAR, ""},
	}
	assert.Equal(expected, prog.Lines)

	assert.Equal("PUSH 5\nPUSH 3\nADD\nPUSH 2\nMUL\nPOP\nDIV\nSUB\nCLEAR\n", prog.String())
}

func TestParser_Equate(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	p.Predefine("BASE", "10")

	prog, err := p.Parse(strings.NewReader(strings.Join([]string{
		".equ HALF 0.5",
		".equ OP mul",
		"push BASE",
		"push HALF",
		"OP",
		"push PI",
	}, "\n")))
	assert.NoError(err)

	assert.Equal("PUSH 10\nPUSH 0.5\nMUL\nPUSH 3.141592653589793\n", prog.String())
}

func TestParser_Expression(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t,
		".equ N 7",
		"push $(N * 3)",
		"push $(N / 2)",
		"push $(N // 2)",
		"push $(E * 2 // 1)",
		"push $(-(1 + 2) * 1.5)",
	)

	assert.Equal("PUSH 21\nPUSH 3.5\nPUSH 3\nPUSH 5\nPUSH -4.5\n", prog.String())
}

func TestParser_Macro(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t,
		".macro square X",
		"push X",
		"push X",
		"mul",
		".endm",
		".macro twice A B",
		"square A",
		"square B",
		"add",
		".endm",
		"twice 3 4",
	)

	assert.Equal("PUSH 3\nPUSH 3\nMUL\nPUSH 4\nPUSH 4\nMUL\nADD\n", prog.String())
	assert.Equal(2, prog.Lines[0].LineNo)
	assert.Equal(4, prog.Lines[2].LineNo)
	assert.Equal(9, prog.Lines[6].LineNo)

	line := prog.Find(4)
	assert.NotNil(line)
	assert.Equal(machine.OP_MUL, line.Op)
	assert.Nil(prog.Find(11))

	var linenos []int
	for lineno := range prog.Steps() {
		linenos = append(linenos, lineno)
	}
	assert.Equal([]int{2, 3, 4, 2, 3, 4, 9}, linenos)
}

func TestParser_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"unknown", []string{"push 1", "dup"}, 2, ErrCommandInvalid("dup")},
		{"missing", []string{"push"}, 1, ErrOperandMissing},
		{"extra-push", []string{"push 1 2"}, 1, ErrExtraArgs},
		{"extra-op", []string{"add 1"}, 1, ErrExtraArgs},
		{"number", []string{"push abc"}, 1, ErrParseNumber("abc")},
		{"nan", []string{"push NaN"}, 1, ErrParseNumber("NaN")},
		{"equ-syntax", []string{".equ X"}, 1, ErrEquateSyntax},
		{"equ-dup", []string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{"macro-nest", []string{".macro a", ".macro b"}, 2, ErrMacroNesting},
		{"macro-dup", []string{".macro a", ".endm", ".macro a"}, 3, ErrMacroDuplicate},
		{"macro-name", []string{".macro"}, 1, ErrMacroSyntax},
		{"macro-lonely", []string{".macro a", "pop"}, 2, ErrMacroLonely},
		{"endm-lonely", []string{".endm"}, 1, ErrMacroLonelyEndm},
		{"macro-args", []string{".macro a X", ".endm", "a"}, 3, ErrMacroSyntax},
	}

	for _, entry := range table {
		p := &Parser{}
		_, err := p.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.Error(err, entry.name)

		var syntaxErr *ErrSyntax
		if assert.True(errors.As(err, &syntaxErr), entry.name) {
			assert.Equal(entry.lineno, syntaxErr.LineNo, entry.name)
		}
		assert.True(errors.Is(err, entry.err), entry.name)
	}
}

func TestParser_ExpressionError(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	_, err := p.Parse(strings.NewReader("push $(1 +)"))
	assert.Error(err)

	var exprErr ErrParseExpression
	assert.True(errors.As(err, &exprErr))
	assert.Equal(ErrParseExpression("1 +"), exprErr)

	_, err = p.Parse(strings.NewReader(`push $("text")`))
	assert.True(errors.As(err, &exprErr))
}

func TestParser_MacroError(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	_, err := p.Parse(strings.NewReader(strings.Join([]string{
		".macro bad",
		"push 1",
		"swap",
		".endm",
		"bad",
	}, "\n")))

	var macroErr *ErrMacro
	assert.True(errors.As(err, &macroErr))
	assert.Equal("bad", macroErr.Macro)
	assert.Equal(3, macroErr.Line)
	assert.True(errors.Is(err, ErrCommandInvalid("swap")))
}

func TestParser_Reuse(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	_, err := p.Parse(strings.NewReader(".equ X 1\n.macro m\n.endm\npush X"))
	assert.NoError(err)

	prog, err := p.Parse(strings.NewReader(".equ X 2\n.macro m\n.endm\npush X"))
	assert.NoError(err)
	assert.Equal("PUSH 2\n", prog.String())
}

func TestParser_ErrorLanguage(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(language.BrazilianPortuguese)
	defer translate.SetLanguage(language.AmericanEnglish)

	p := &Parser{}
	_, err := p.Parse(strings.NewReader("push 1\n.endm"))
	assert.True(errors.Is(err, ErrMacroLonelyEndm))
	assert.Equal(".endm sem .macro", ErrMacroLonelyEndm.Error())
	assert.Equal("linha 2 '.endm' .endm sem .macro", err.Error())

	_, err = p.Parse(strings.NewReader(".macro m\npush\n.endm\nm"))
	assert.True(errors.Is(err, ErrOperandMissing))
	assert.Equal("linha 4 'm' macro m linha 2 operando ausente", err.Error())
}
