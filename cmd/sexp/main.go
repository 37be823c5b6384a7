// sexp - S-expression formatter and REPL
//
// Usage:
//
//	sexp [-tree] fmt [file]      Print every value in canonical form, one per line
//	sexp tokens [file]           Print the token stream
//	sexp tree [file]             Print the value trees
//	sexp repl                    Read values interactively
//
// With no command sexp starts the REPL when stdin is a terminal and formats
// stdin otherwise. If no file is given, reads from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/xiam/sexp"
	"github.com/xiam/sexp/ast"
	"github.com/xiam/sexp/internal/config"
	"github.com/xiam/sexp/internal/repl"
	"github.com/xiam/sexp/lexer"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		glog.Fatalf("config: %v", err)
	}

	flag.BoolVar(&cfg.Tree, "tree", cfg.Tree, "print value trees instead of canonical text")
	flag.Usage = printUsage
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()

	cmd := "fmt"
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		cmd = "repl"
	}
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	glog.V(1).Infof("sexp: running %q with %v", cmd, args)

	switch cmd {
	case "fmt", "tree", "tokens":
		input, closeFn, err := openInput(args)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer closeFn()

		switch cmd {
		case "fmt":
			err = cmdFmt(input, os.Stdout, cfg.Tree)
		case "tree":
			err = cmdFmt(input, os.Stdout, true)
		case "tokens":
			err = cmdTokens(input, os.Stdout)
		}
		if err != nil {
			glog.Error(err)
			fatal("%v", err)
		}
	case "repl":
		if err := runRepl(cfg); err != nil {
			fatal("repl: %v", err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `sexp - S-expression formatter and REPL

Usage:
  sexp [-tree] fmt [file]      Print every value in canonical form, one per line
  sexp tokens [file]           Print the token stream
  sexp tree [file]             Print the value trees
  sexp repl                    Read values interactively

Environment:
  SEXP_PROMPT                  REPL prompt (default "sexp> ")
  SEXP_CONTINUE_PROMPT         REPL prompt for unfinished lists (default "  ... ")
  SEXP_TREE                    Same as -tree

If no file is given, reads from stdin.
`)
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// cmdFmt prints every value of r in canonical form, or as a tree.
func cmdFmt(r io.Reader, w io.Writer, tree bool) error {
	values, err := sexp.NewReader(r).ReadAll()
	if err != nil {
		return err
	}
	for _, v := range values {
		if tree {
			ast.Print(w, v)
			continue
		}
		fmt.Fprintln(w, sexp.Display(v))
	}
	return nil
}

// cmdTokens prints the token stream of r.
func cmdTokens(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(data)
	if err != nil {
		return err
	}
	for i, tok := range tokens {
		line, col := tok.Pos()
		fmt.Fprintf(w, "token[%d] (type: %v, line: %d, col: %d) %q\n", i, tok.Type(), line, col, tok.Text())
	}
	return nil
}

func runRepl(cfg config.Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, cfg.Prompt)

	glog.Info("repl: session started")
	return repl.New(t, t, cfg).Run()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "sexp: "+format+"\n", args...)
	os.Exit(1)
}
