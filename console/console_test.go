package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Lines(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{
		Input:  strings.NewReader("push 5\n\npop\n"),
		Output: out,
		Prompt: "> ",
	}

	assert.False(con.Interactive())

	var lines []string
	for line := range con.Lines() {
		lines = append(lines, line)
	}

	assert.Equal([]string{"push 5", "", "pop"}, lines)
	assert.NoError(con.Err())
	assert.Equal("", out.String())
}

func TestConsole_Lines_Break(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: strings.NewReader("a\nb\nc\n")}

	var lines []string
	for line := range con.Lines() {
		lines = append(lines, line)
		if line == "b" {
			break
		}
	}

	assert.Equal([]string{"a", "b"}, lines)
}

func TestWords(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line  string
		words []string
	}){
		{"push 5", []string{"push", "5"}},
		{"  add  ", []string{"add"}},
		{"", []string{}},
		{`input "1 2"`, []string{"input", "1 2"}},
		{"push 3 ; third", []string{"push", "3"}},
		{"push 4;", []string{"push", "4"}},
		{`input "2>x"`, []string{"input", "2>x"}},
		{`push 6 \| pop`, []string{"push", "6", "|", "pop"}},
	}

	for _, entry := range table {
		words, err := Words(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(len(entry.words), len(words), entry.line)
		if len(entry.words) > 0 {
			assert.Equal(entry.words, words, entry.line)
		}
	}

	_, err := Words(`push "5`)
	assert.Error(err)
}

func TestWords_Operator(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		op   string
	}){
		{"push 2>x", ">"},
		{"push 2 >x", ">"},
		{"pop | add", "|"},
		{"push 1 && pop", "&"},
		{"push <5", "<"},
		{"pop | add ; comment", "|"},
		{"ação 1>x", ">"},
	}

	for _, entry := range table {
		words, err := Words(entry.line)
		assert.Equal(ErrOperator(entry.op), err, entry.line)
		assert.Nil(words, entry.line)
	}
}
