// Package symbol interns (lexeme, kind) pairs into canonical instances so
// that equality of a token's payload reduces to pointer identity.
package symbol

import "xtreelang/pkg/token"

// Symbol is a canonical (lexeme, kind) pair. Two symbols with the same
// lexeme and kind are always the same *Symbol, because they are only ever
// produced by a Table.
type Symbol struct {
	Lexeme string
	Kind   token.Kind
}

func (s *Symbol) String() string {
	return s.Lexeme
}

// key identifies a symbol independent of which lexeme originally produced
// the kind override (keywords and operators intern under their reserved
// kind, not Identifier).
type key struct {
	lexeme string
	kind   token.Kind
}

// Table interns symbols for a single pipeline run. It is never shared
// across runs and carries no process-wide state.
type Table struct {
	entries map[key]*Symbol
	lexemes map[string]bool // every lexeme with at least one entry, for BogusToken probes
}

// NewTable builds a table pre-seeded with one entry per reserved keyword
// and per operator/punctuation lexeme, mirroring the reserved-word map a
// hand-written scanner keeps beside its keyword table.
func NewTable() *Table {
	t := &Table{entries: make(map[key]*Symbol), lexemes: make(map[string]bool)}
	for lexeme, kind := range keywordSeeds() {
		t.seed(lexeme, kind)
	}
	for lexeme, kind := range operatorSeeds() {
		t.seed(lexeme, kind)
	}
	return t
}

func (t *Table) seed(lexeme string, kind token.Kind) {
	t.entries[key{lexeme, kind}] = &Symbol{Lexeme: lexeme, Kind: kind}
	t.lexemes[lexeme] = true
}

// Intern returns the canonical symbol for (lexeme, kind), creating one on
// first use. Callers that want reserved-word resolution should pass the
// kind they expect (Identifier for a plain name); a pre-seeded keyword
// entry, if any, takes precedence via token.Keyword at the lexer level,
// not here.
func (t *Table) Intern(lexeme string, kind token.Kind) *Symbol {
	k := key{lexeme, kind}
	if sym, ok := t.entries[k]; ok {
		return sym
	}
	sym := &Symbol{Lexeme: lexeme, Kind: kind}
	t.entries[k] = sym
	t.lexemes[lexeme] = true
	return sym
}

// Lookup answers whether (lexeme, kind) already has an interned symbol,
// without creating one. The lexer uses this with kind == token.BogusToken
// to probe for the mere existence of a lexeme (e.g. a two-character
// operator pair) before committing to consuming it.
func (t *Table) Lookup(lexeme string, kind token.Kind) (*Symbol, bool) {
	if kind == token.BogusToken {
		return nil, t.lexemes[lexeme]
	}
	sym, ok := t.entries[key{lexeme, kind}]
	return sym, ok
}

func keywordSeeds() map[string]token.Kind {
	seeds := make(map[string]token.Kind)
	for _, lexeme := range []string{
		"program", "if", "then", "else", "while", "for", "in", "do",
		"until", "return", "int", "boolean", "number", "date",
	} {
		kind, _ := token.Keyword(lexeme)
		seeds[lexeme] = kind
	}
	return seeds
}

func operatorSeeds() map[string]token.Kind {
	seeds := make(map[string]token.Kind)
	for _, lexeme := range []string{
		"{", "}", "(", ")", "[", "]", ",", "=", "==", "!=",
		"<", "<=", ">", ">=", "+", "-", "|", "*", "/", "&",
	} {
		kind, _ := token.Operator(lexeme)
		seeds[lexeme] = kind
	}
	return seeds
}
