// Package c1 answers one question about C1 source text: does it conform to
// the language grammar? It accepts or rejects; it builds no syntax tree and
// resolves no names.
package c1

import (
	"fmt"
	"os"

	"github.com/dhamidi/c1t/c1/parser"
)

// Check reports whether source is a syntactically valid C1 program. It
// returns nil on acceptance and a *parser.SyntaxError on rejection. Each
// call is independent; concurrent calls are safe.
func Check(source string) error {
	return parser.Parse(source)
}

// CheckFile reads path and checks its contents.
func CheckFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}
	return parser.Parse(string(data))
}
