// Package parser implements the strict LL(1) recursive-descent parser: one
// routine per non-terminal, no backtracking, no error recovery beyond
// reporting the first offending token.
package parser

import (
	"fmt"

	"xtreelang/pkg/ast"
	"xtreelang/pkg/lexer"
	"xtreelang/pkg/token"
)

// SyntaxError carries the token that triggered the failure and the kind
// that was required in its place.
type SyntaxError struct {
	Found    lexer.Token
	Expected token.Kind
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: found %s %q — Expected: %s",
		e.Found.Line, e.Found.Sym.Kind, e.Found.Sym.Lexeme, e.Expected)
}

// Parser consumes the flat token slice produced by the lexer and builds an
// AST rooted at a single Program node.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New wraps tokens (as produced by lexer.Lex, including the trailing EOF
// token) in a Parser.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is the package-level entry point: lex has already run to
// completion, and Parse builds the Program tree or returns a SyntaxError.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	return New(tokens).rProgram()
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) isNextTok(k token.Kind) bool {
	return p.peek().Sym.Kind == k
}

func (p *Parser) expect(k token.Kind) (lexer.Token, error) {
	if !p.isNextTok(k) {
		return lexer.Token{}, &SyntaxError{Found: p.peek(), Expected: k}
	}
	return p.advance(), nil
}

// rProgram -> 'program' BLOCK ==> Program
func (p *Parser) rProgram() (*ast.Node, error) {
	if _, err := p.expect(token.Program); err != nil {
		return nil, err
	}
	block, err := p.rBlock()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.Program, block), nil
}

// rBlock -> '{' D* S* '}' ==> Block
func (p *Parser) rBlock() (*ast.Node, error) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	var children []*ast.Node
	for p.startingDecl() {
		d, err := p.rDecl()
		if err != nil {
			return nil, err
		}
		children = append(children, d)
	}
	for p.startingStatement() {
		s, err := p.rStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, s)
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.Block, Children: children}, nil
}

func (p *Parser) startingDecl() bool {
	switch p.peek().Sym.Kind {
	case token.Int, token.BOOLean, token.Number, token.DateType:
		return true
	}
	return false
}

// startingStatement preserves the source's quirk of listing Else as a
// statement starter even though Else can never legally begin one: a stray
// else is consumed into rBlock's statement loop and then fails inside
// rStatement, rather than being excluded from the FIRST set up front.
func (p *Parser) startingStatement() bool {
	switch p.peek().Sym.Kind {
	case token.If, token.Else, token.Doloop, token.For, token.While,
		token.Return, token.LeftBrace, token.Identifier:
		return true
	}
	return false
}

// rDecl -> TYPE NAME ==> Decl
//
//	-> TYPE NAME FUNHEAD BLOCK ==> FunctionDecl
func (p *Parser) rDecl() (*ast.Node, error) {
	typ, err := p.rType()
	if err != nil {
		return nil, err
	}
	name, err := p.rName()
	if err != nil {
		return nil, err
	}
	if p.isNextTok(token.LeftParen) {
		formals, err := p.rFunHead()
		if err != nil {
			return nil, err
		}
		body, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.FunctionDecl, typ, name, formals, body), nil
	}
	return ast.New(ast.Decl, typ, name), nil
}

func (p *Parser) rType() (*ast.Node, error) {
	switch p.peek().Sym.Kind {
	case token.Int:
		p.advance()
		return ast.New(ast.IntType), nil
	case token.Number:
		p.advance()
		return ast.New(ast.NumberType), nil
	case token.DateType:
		p.advance()
		return ast.New(ast.DateType), nil
	}
	if _, err := p.expect(token.BOOLean); err != nil {
		return nil, err
	}
	return ast.New(ast.BoolType), nil
}

// rFunHead -> '(' (D (',' D)*)? ')' ==> Formals
func (p *Parser) rFunHead() (*ast.Node, error) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	var children []*ast.Node
	if !p.isNextTok(token.RightParen) {
		for {
			d, err := p.rDecl()
			if err != nil {
				return nil, err
			}
			children = append(children, d)
			if p.isNextTok(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.Formals, Children: children}, nil
}

// rStatement dispatches on the FIRST set startingStatement covers.
func (p *Parser) rStatement() (*ast.Node, error) {
	switch p.peek().Sym.Kind {
	case token.If:
		p.advance()
		cond, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Then); err != nil {
			return nil, err
		}
		then, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		children := []*ast.Node{cond, then}
		if p.isNextTok(token.Else) {
			p.advance()
			els, err := p.rBlock()
			if err != nil {
				return nil, err
			}
			children = append(children, els)
		}
		return &ast.Node{Kind: ast.If, Children: children}, nil

	case token.While:
		p.advance()
		cond, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.While, cond, body), nil

	case token.For:
		p.advance()
		name, err := p.rName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.In); err != nil {
			return nil, err
		}
		list, err := p.rList()
		if err != nil {
			return nil, err
		}
		body, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Else); err != nil {
			return nil, err
		}
		els, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.For, name, list, body, els), nil

	case token.Doloop:
		p.advance()
		body, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Until); err != nil {
			return nil, err
		}
		cond, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.Doloop, body, cond), nil

	case token.Return:
		p.advance()
		e, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.Return, e), nil

	case token.LeftBrace:
		return p.rBlock()
	}

	// Default: NAME '=' E ==> Assign
	name, err := p.rName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	rhs, err := p.rExpr()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.Assign, name, rhs), nil
}

var relationalOps = map[token.Kind]bool{
	token.Equal: true, token.NotEqual: true, token.Less: true,
	token.LessEqual: true, token.Greater: true, token.GreaterEqual: true,
}
var addingOps = map[token.Kind]bool{token.Plus: true, token.Minus: true, token.Or: true}
var multiplyingOps = map[token.Kind]bool{token.Multiply: true, token.Divide: true, token.And: true}

// rExpr -> SE (RELOP SE)? — relational operators are non-associative, so
// at most one is consumed.
func (p *Parser) rExpr() (*ast.Node, error) {
	left, err := p.rSimpleExpr()
	if err != nil {
		return nil, err
	}
	if !relationalOps[p.peek().Sym.Kind] {
		return left, nil
	}
	op := p.advance()
	right, err := p.rSimpleExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.RelOp, Sym: op.Sym, Children: []*ast.Node{left, right}}, nil
}

// rSimpleExpr -> T (('+' | '-' | '|') T)* — left-associative.
func (p *Parser) rSimpleExpr() (*ast.Node, error) {
	left, err := p.rTerm()
	if err != nil {
		return nil, err
	}
	for addingOps[p.peek().Sym.Kind] {
		op := p.advance()
		right, err := p.rTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Node{Kind: ast.AddOp, Sym: op.Sym, Children: []*ast.Node{left, right}}
	}
	return left, nil
}

// rTerm -> F (('*' | '/' | '&') F)* — left-associative.
func (p *Parser) rTerm() (*ast.Node, error) {
	left, err := p.rFactor()
	if err != nil {
		return nil, err
	}
	for multiplyingOps[p.peek().Sym.Kind] {
		op := p.advance()
		right, err := p.rFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Node{Kind: ast.MultOp, Sym: op.Sym, Children: []*ast.Node{left, right}}
	}
	return left, nil
}

// rFactor -> '(' E ')' | NAME | INTEGER | NUMBERLIT | DATELIT
//
//	| NAME '(' (E (',' E)*)? ')' ==> Call
func (p *Parser) rFactor() (*ast.Node, error) {
	switch p.peek().Sym.Kind {
	case token.LeftParen:
		p.advance()
		e, err := p.rExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return e, nil
	case token.INTeger:
		tok := p.advance()
		return ast.Leaf(ast.IntLit, tok.Sym), nil
	case token.NumberLit:
		tok := p.advance()
		return ast.Leaf(ast.NumberLitNode, tok.Sym), nil
	case token.DateLit:
		tok := p.advance()
		return ast.Leaf(ast.DateLitNode, tok.Sym), nil
	}

	name, err := p.rName()
	if err != nil {
		return nil, err
	}
	if !p.isNextTok(token.LeftParen) {
		return name, nil
	}
	p.advance()
	children := []*ast.Node{name}
	if !p.isNextTok(token.RightParen) {
		for {
			arg, err := p.rExpr()
			if err != nil {
				return nil, err
			}
			children = append(children, arg)
			if p.isNextTok(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.Call, Children: children}, nil
}

// rList -> '[' (F (',' F)*)? ']' ==> List
func (p *Parser) rList() (*ast.Node, error) {
	if _, err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}
	var children []*ast.Node
	if !p.isNextTok(token.RightBracket) {
		f, err := p.rFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, f)
		for p.isNextTok(token.Comma) {
			p.advance()
			f, err := p.rFactor()
			if err != nil {
				return nil, err
			}
			children = append(children, f)
		}
	}
	if _, err := p.expect(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.List, Children: children}, nil
}

// rName -> IDENT ==> Id
func (p *Parser) rName() (*ast.Node, error) {
	tok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	return ast.Leaf(ast.Id, tok.Sym), nil
}
