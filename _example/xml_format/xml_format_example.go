package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sexp/ast"
	"github.com/xiam/sexp/parser"
)

func printTree(v ast.Value) {
	printIndentedTree(v, 0)
}

func printIndentedTree(v ast.Value, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if l, ok := v.(*ast.List); ok {
		fmt.Printf("%s<%s>\n", indent, l.Type())
		for i := 0; i < l.Len(); i++ {
			printIndentedTree(l.Nth(i), indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, l.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, v.Type(), ast.Display(v), v.Type())
}

func main() {
	input := `(fn_a (fn_b [89 :A :B [67 3.27]]) (fn_c 66 3 53 "Hello world!" 😊))`

	root, _, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
