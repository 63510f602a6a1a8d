// Package parser implements a recursive-descent, single-token-lookahead
// parser over internal/token, producing an internal/ast tree. It does not
// attempt error recovery: the first Error aborts parsing.
package parser

import (
	"github.com/cwbudde/mlc/internal/ast"
	"github.com/cwbudde/mlc/internal/token"
	"github.com/cwbudde/mlc/internal/types"
)

// Parser holds the cursor state for one parse. Construct one per call to
// Parse, or just call the package-level Parse function.
type Parser struct {
	cursor *cursor
}

// New constructs a Parser over tokens, which must end with an EOI token.
func New(tokens []token.Token) *Parser {
	return &Parser{cursor: &cursor{tokens: tokens}}
}

// Parse parses tokens into a program (a top-level sequence of
// statements), stopping at the first Error.
func Parse(tokens []token.Token) ([]ast.Statement, error) {
	return New(tokens).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.cursor.check(token.EOI) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) expect(k token.Kind, message string) (token.Token, error) {
	if tok, ok := p.cursor.match(k); ok {
		return tok, nil
	}
	return token.Token{}, &Error{Kind: UnexpectedToken, OffendingToken: p.cursor.current(), Message: message}
}

// consumeStatementEnd enforces the semicolon policy shared by most
// statements: a terminating ';' is required unless the very next token
// already ends the enclosing block.
func (p *Parser) consumeStatementEnd() error {
	if _, ok := p.cursor.match(token.Semicolon); ok {
		return nil
	}
	if p.cursor.check(token.RCurly) {
		return nil
	}
	return &Error{Kind: UnexpectedToken, OffendingToken: p.cursor.current(), Message: "expected ';' to end the statement"}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cursor.current().Kind {
	case token.Let:
		return p.parseVariableDeclaration()
	case token.Fn:
		return p.parseFunctionDefinition()
	case token.While:
		return p.parseWhile()
	case token.Return:
		return p.parseReturn()
	case token.Name:
		if p.cursor.peekKind(1) == token.Equals {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVariableDeclaration() (ast.Statement, error) {
	letTok := p.cursor.advance()

	name, err := p.expect(token.Name, "expected a name to start a variable declaration")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "expected ':' after variable name"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equals, "expected '=' in variable declaration"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}

	return &ast.VariableDeclaration{Token: letTok, Name: name, Type: typ, Value: value}, nil
}

func (p *Parser) parseFunctionDefinition() (ast.Statement, error) {
	fnTok := p.cursor.advance()

	name, err := p.expect(token.Name, "expected a function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []ast.Param
	for !p.cursor.check(token.RParen) {
		pname, err := p.expect(token.Name, "expected a parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "expected ':' after parameter name"); err != nil {
			return nil, err
		}
		ptyp, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: pname, Type: ptyp})
		if _, ok := p.cursor.match(token.Comma); !ok {
			break
		}
	}
	if _, err := p.expect(token.RParen, "expected ')' to close the parameter list"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Arrow, "expected '->' after the parameter list"); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{Token: fnTok, Name: name, ReturnType: retType, Args: params, Body: body}, nil
}

// parseWhile parses `while cond block`. A trailing ';' is never required,
// but one is tolerated and silently consumed if present, so adding or
// removing it never changes the parsed tree.
func (p *Parser) parseWhile() (ast.Statement, error) {
	whileTok := p.cursor.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	p.cursor.match(token.Semicolon)

	return &ast.While{Token: whileTok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	retTok := p.cursor.advance()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}

	return &ast.Return{Token: retTok, Value: value}, nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	name := p.cursor.advance()
	if _, err := p.expect(token.Equals, "expected '=' in assignment"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}

	return &ast.Assignment{To: name, Value: value}, nil
}

// parseExpressionStatement handles any statement that starts with an
// expression. An if-expression used this way may omit its terminating
// semicolon unconditionally; every other expression follows the normal
// statement-end policy.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, isIf := value.(*ast.If); isIf {
		p.cursor.match(token.Semicolon)
	} else if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}

	return &ast.ExpressionStatement{Value: value}, nil
}

func (p *Parser) parseBlock() (ast.Block, error) {
	if _, err := p.expect(token.LCurly, "expected '{' to start a block"); err != nil {
		return nil, err
	}

	var stmts ast.Block
	for !p.cursor.check(token.RCurly) && !p.cursor.check(token.EOI) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}

	if _, err := p.expect(token.RCurly, "expected '}' to close a block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseType parses a type annotation. list<T> annotations are rejected:
// List is reserved for future lowering (see internal/types and
// internal/ir), and the lexer has no '<' token to spell its payload
// with, so there is nothing to parse it into yet.
func (p *Parser) parseType() (types.Type, error) {
	tok := p.cursor.current()
	switch tok.Kind {
	case token.IntType:
		p.cursor.advance()
		return types.Int, nil
	case token.BoolType:
		p.cursor.advance()
		return types.Bool, nil
	case token.ListType:
		return nil, &Error{Kind: UnexpectedToken, OffendingToken: tok, Message: "list<T> type annotations are not supported"}
	default:
		return nil, &Error{Kind: UnexpectedToken, OffendingToken: tok, Message: "expected a type (int or bool)"}
	}
}
