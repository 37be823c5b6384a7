package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdFmt(t *testing.T) {
	var out bytes.Buffer

	in := strings.NewReader("(a   [b c] ; comment\n \"d\\te\")\n  42.50")
	require.NoError(t, cmdFmt(in, &out, false))

	assert.Equal(t, "(a (b c) \"d\\te\")\n42.5\n", out.String())
}

func TestCmdFmtTree(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, cmdFmt(strings.NewReader("(a)"), &out, true))
	assert.Equal(t, "(list): [1]\n    (symbol): a\n", out.String())
}

func TestCmdFmtError(t *testing.T) {
	var out bytes.Buffer

	err := cmdFmt(strings.NewReader("(a]"), &out, false)
	assert.Error(t, err)
	assert.Equal(t, "", out.String())
}

func TestCmdTokens(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, cmdTokens(strings.NewReader(`(x "y")`), &out))

	expected := "token[0] (type: open, line: 1, col: 1) \"(\"\n" +
		"token[1] (type: atom, line: 1, col: 2) \"x\"\n" +
		"token[2] (type: string, line: 1, col: 4) \"\\\"y\\\"\"\n" +
		"token[3] (type: close, line: 1, col: 7) \")\"\n" +
		"token[4] (type: EOF, line: 1, col: 8) \"\"\n"
	assert.Equal(t, expected, out.String())
}

func TestCmdTokensError(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, cmdTokens(strings.NewReader(`"open`), &out))
}
