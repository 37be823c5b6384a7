// Package repl implements a line oriented read and print loop.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/xiam/sexp"
	"github.com/xiam/sexp/ast"
	"github.com/xiam/sexp/internal/config"
	"github.com/xiam/sexp/parser"
)

// LineReader reads one line of input at a time. *term.Terminal implements it.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

// Session reads values from a LineReader and writes them back in canonical
// form. Input accumulates across lines until every open list is closed.
type Session struct {
	in  LineReader
	out io.Writer
	cfg config.Config

	buf bytes.Buffer
}

func New(in LineReader, out io.Writer, cfg config.Config) *Session {
	return &Session{
		in:  in,
		out: out,
		cfg: cfg,
	}
}

// Run loops until the LineReader returns io.EOF.
func (s *Session) Run() error {
	s.in.SetPrompt(s.cfg.Prompt)

	for {
		line, err := s.in.ReadLine()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				fmt.Fprintf(s.out, "error: %v\n", parser.ErrUnexpectedEOF)
			}
			return nil
		}
		if err != nil {
			return err
		}

		s.buf.WriteString(line)
		s.buf.WriteByte('\n')

		values, err := sexp.ReadAll(s.buf.Bytes())
		if errors.Is(err, parser.ErrUnexpectedEOF) {
			s.in.SetPrompt(s.cfg.ContinuePrompt)
			continue
		}

		s.buf.Reset()
		s.in.SetPrompt(s.cfg.Prompt)

		if err != nil {
			glog.V(1).Infof("repl: %v", err)
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}

		for _, v := range values {
			s.write(v)
		}
	}
}

func (s *Session) write(v ast.Value) {
	if s.cfg.Tree {
		ast.Print(s.out, v)
		return
	}
	fmt.Fprintln(s.out, ast.Display(v))
}
