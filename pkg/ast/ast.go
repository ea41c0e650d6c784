// Package ast defines the tagged-tree node shape shared by the parser and
// the layout engine. Rather than one Go type per grammar production, every
// node is the same struct carrying a Kind tag; callers dispatch on Kind and
// recurse over Children, which is the idiomatic replacement for a
// double-dispatch visitor hierarchy in a language without sum types.
package ast

import "xtreelang/pkg/symbol"

// Kind tags the variant of a Node. The parser only ever produces the first
// block of kinds; the remainder are reserved for grammar rules a caller may
// add later and are never constructed here.
type Kind int

const (
	Program Kind = iota
	Block
	FunctionDecl
	Decl
	Formals
	ActualArgs
	Call
	IntType
	BoolType
	NumberType
	DateType
	If
	While
	For
	Doloop
	Return
	Assign
	List
	IntLit
	NumberLitNode
	DateLitNode
	Id
	RelOp
	AddOp
	MultOp

	// Reserved: accepted as valid Kind values for a Node, but never
	// produced by the parser in pkg/parser.
	Unless
	Switch
	SwitchBlock
	Case
	Default
	StringType
	CharType
	FloatType
	VoidType
	Scientific
)

var kindNames = [...]string{
	Program:       "Program",
	Block:         "Block",
	FunctionDecl:  "FunctionDecl",
	Decl:          "Decl",
	Formals:       "Formals",
	ActualArgs:    "ActualArgs",
	Call:          "Call",
	IntType:       "IntType",
	BoolType:      "BoolType",
	NumberType:    "NumberType",
	DateType:      "DateType",
	If:            "If",
	While:         "While",
	For:           "For",
	Doloop:        "Doloop",
	Return:        "Return",
	Assign:        "Assign",
	List:          "List",
	IntLit:        "Int",
	NumberLitNode: "Number",
	DateLitNode:   "Date",
	Id:            "Id",
	RelOp:         "RelOp",
	AddOp:         "AddOp",
	MultOp:        "MultOp",
	Unless:        "Unless",
	Switch:        "Switch",
	SwitchBlock:   "SwitchBlock",
	Case:          "Case",
	Default:       "Default",
	StringType:    "StringType",
	CharType:      "CharType",
	FloatType:     "FloatType",
	VoidType:      "VoidType",
	Scientific:    "Scientific",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is the single representation for every AST variant. Children are
// positional; their count and order are fixed by the grammar rule that
// produced the node. Sym is non-nil only for the kinds that derive from a
// token: the leaves IntLit, NumberLitNode, DateLitNode and Id, and the
// operator nodes RelOp, AddOp and MultOp, which also have two children.
type Node struct {
	Kind     Kind
	Children []*Node
	Sym      *symbol.Symbol
}

// New builds an internal node with the given children.
func New(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Leaf builds a token-derived leaf node.
func Leaf(kind Kind, sym *symbol.Symbol) *Node {
	return &Node{Kind: kind, Sym: sym}
}

// Label returns the human-readable name Pass 3 (drawing) uses for a node:
// the kind name, plus the lexeme for leaves that carry a symbol.
func (n *Node) Label() string {
	if n.Sym != nil {
		return n.Kind.String() + ": " + n.Sym.Lexeme
	}
	return n.Kind.String()
}
