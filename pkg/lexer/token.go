package lexer

import (
	"fmt"

	"xtreelang/pkg/symbol"
)

// Token is a single lexical unit produced by the Lexer: the inclusive
// column span of its lexeme, the 1-based line it appeared on, and the
// interned symbol carrying its lexeme text and kind.
type Token struct {
	Left, Right int
	Line        int
	Sym         *symbol.Symbol
}

func (t Token) String() string {
	return fmt.Sprintf("%-12s %-14q line %d cols %d-%d", t.Sym.Kind, t.Sym.Lexeme, t.Line, t.Left, t.Right)
}
