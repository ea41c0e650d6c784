// Package token defines the closed set of lexical categories produced by
// the lexer and consumed by the parser.
package token

import "fmt"

// Kind identifies the category of a lexed token.
type Kind int

const (
	// Program is the leading keyword of every source file.
	Program Kind = iota
	If
	Then
	Else
	While
	For
	In
	Doloop
	Until
	Return

	// Type keywords
	Int
	BOOLean
	Number
	DateType

	// Paired delimiters
	LeftBrace
	RightBrace
	LeftParen
	RightParen
	LeftBracket
	RightBracket

	Comma

	// Assignment / relational operators
	Assign
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Additive / multiplicative operators
	Plus
	Minus
	Or
	Multiply
	Divide
	And

	// Identifiers and literals
	Identifier
	INTeger
	NumberLit
	DateLit

	// BogusToken is never attached to a real token. It is used only to probe
	// the symbol table for the existence of a two-character operator pair
	// without interning a symbol for a lexeme that turns out not to exist.
	BogusToken

	// EOF terminates the token stream.
	EOF
)

var names = [...]string{
	Program:      "Program",
	If:           "If",
	Then:         "Then",
	Else:         "Else",
	While:        "While",
	For:          "For",
	In:           "In",
	Doloop:       "Doloop",
	Until:        "Until",
	Return:       "Return",
	Int:          "Int",
	BOOLean:      "BOOLean",
	Number:       "Number",
	DateType:     "DateType",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Comma:        "Comma",
	Assign:       "Assign",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Plus:         "Plus",
	Minus:        "Minus",
	Or:           "Or",
	Multiply:     "Multiply",
	Divide:       "Divide",
	And:          "And",
	Identifier:   "Identifier",
	INTeger:      "INTeger",
	NumberLit:    "NumberLit",
	DateLit:      "DateLit",
	BogusToken:   "BogusToken",
	EOF:          "EOF",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords pre-seeds the reserved-word lexemes and their canonical kind.
// Any identifier-shaped lexeme not present here interns as Identifier.
var keywords = map[string]Kind{
	"program": Program,
	"if":      If,
	"then":    Then,
	"else":    Else,
	"while":   While,
	"for":     For,
	"in":      In,
	"do":      Doloop,
	"until":   Until,
	"return":  Return,
	"int":     Int,
	"boolean": BOOLean,
	"number":  Number,
	"date":    DateType,
}

// operators pre-seeds every legal one- and two-character operator/punctuation
// lexeme. It is consulted by the lexer both to classify a matched lexeme and,
// via a BogusToken lookup, to test whether a two-character pair exists at all
// before committing to it.
var operators = map[string]Kind{
	"{":  LeftBrace,
	"}":  RightBrace,
	"(":  LeftParen,
	")":  RightParen,
	"[":  LeftBracket,
	"]":  RightBracket,
	",":  Comma,
	"=":  Assign,
	"==": Equal,
	"!=": NotEqual,
	"<":  Less,
	"<=": LessEqual,
	">":  Greater,
	">=": GreaterEqual,
	"+":  Plus,
	"-":  Minus,
	"|":  Or,
	"*":  Multiply,
	"/":  Divide,
	"&":  And,
}

// Keyword reports the reserved kind for lexeme, if any.
func Keyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}

// Operator reports the kind for an operator/punctuation lexeme, if any.
func Operator(lexeme string) (Kind, bool) {
	k, ok := operators[lexeme]
	return k, ok
}
