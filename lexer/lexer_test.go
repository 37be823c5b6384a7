package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -2.22`,

		`+ 1 1 1 1`,

		`[ [ [] ] [] []]`,

		`(+ 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a :b ; comment
			c-d-e-f
			"g\nhi"
		)`,

		`(set foo (+ 3 3))`,

		`(fn sum [ a b ] {
			(+ a b)
		})`,

		`(fn1 [:A "😊"])`,

		`(fn1 {:robot 🤖})`,

		``,

		`; only a comment`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{
				TokenAtom,
				TokenEOF,
			},
		},
		{
			"+\n\t1",
			[]TokenType{
				TokenAtom,
				TokenAtom,
				TokenEOF,
			},
		},
		{
			`(+
				[1
				{}])`,
			[]TokenType{
				TokenOpen,
				TokenAtom,
				TokenOpen,
				TokenAtom,
				TokenOpen,
				TokenClose,
				TokenClose,
				TokenClose,
				TokenEOF,
			},
		},
		{
			`("a b" c"d"e)`,
			[]TokenType{
				TokenOpen,
				TokenString,
				TokenAtom,
				TokenString,
				TokenAtom,
				TokenClose,
				TokenEOF,
			},
		},
		{
			"(1 ;asdf 2\n3)",
			[]TokenType{
				TokenOpen,
				TokenAtom,
				TokenAtom,
				TokenClose,
				TokenEOF,
			},
		},
		{
			"a;b",
			[]TokenType{
				TokenAtom,
				TokenEOF,
			},
		},
		{
			"",
			[]TokenType{
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens))
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{`  asd)`, []string{`asd`, `)`, ``}},
		{`  asd(`, []string{`asd`, `(`, ``}},
		{`"asd)f"`, []string{`"asd)f"`, ``}},
		{`"a\"b" c`, []string{`"a\"b"`, `c`, ``}},
		{`"a\\" c`, []string{`"a\\"`, `c`, ``}},
		{"x\ry\vz", []string{"x\ry\vz", ``}},
		{"[a]{b}", []string{`[`, `a`, `]`, `{`, `b`, `}`, ``}},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		require.NoError(t, err)

		texts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			texts = append(texts, tok.Text())
		}
		assert.Equal(t, testCases[i].Out, texts)
	}
}

func TestUnterminatedString(t *testing.T) {
	testCases := []string{
		`"asdf`,
		`   "asdf`,
		"\"as\ndf\"",
		`"ends with a backslash\`,
		`(a "b`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		assert.Nil(t, tokens)
		assert.Equal(t, ErrUnterminatedString, err)
	}
}

func TestLexerStopsOnError(t *testing.T) {
	lx := New([]byte(`abc   "def`))

	tok := lx.Next()
	assert.True(t, tok.Is(TokenAtom))
	assert.Equal(t, 3, lx.Offset())

	tok = lx.Next()
	assert.True(t, tok.Is(TokenError))
	assert.Equal(t, 3, lx.Offset())
	assert.Equal(t, ErrUnterminatedString, lx.Err())

	start, end := tok.Span()
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)

	tok = lx.Next()
	assert.True(t, tok.Is(TokenError))
	assert.Equal(t, 3, lx.Offset())
}

func TestLexerOffset(t *testing.T) {
	lx := New([]byte(` (ab "c" ) ; tail`))

	expected := []struct {
		tt     TokenType
		offset int
	}{
		{TokenOpen, 2},
		{TokenAtom, 4},
		{TokenString, 8},
		{TokenClose, 10},
		{TokenEOF, 17},
	}

	for _, e := range expected {
		tok := lx.Next()
		assert.Equal(t, e.tt, tok.Type())
		assert.Equal(t, e.offset, lx.Offset())
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\n\n",
			[][2]int{
				{5, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7}, {5, 1},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1}, {3, 3}, {3, 8},
			},
		},
		{
			"(a ; c\n \"b\\\nc\" d)",
			[][2]int{
				{1, 1}, {1, 2}, {2, 2}, {3, 4}, {3, 5}, {3, 6},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestCloser(t *testing.T) {
	for open, close := range map[byte]byte{'(': ')', '[': ']', '{': '}'} {
		c, ok := Closer(open)
		assert.True(t, ok)
		assert.Equal(t, close, c)
	}

	_, ok := Closer(')')
	assert.False(t, ok)
}

func TestTokenTypeName(t *testing.T) {
	assert.Equal(t, "open", TokenOpen.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "invalid", TokenType(200).String())
}
