package parser

import (
	"github.com/cwbudde/mlc/internal/ast"
	"github.com/cwbudde/mlc/internal/token"
)

// parseExpression parses the lowest-precedence expression production,
// logical ||/&&.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogical()
}

func (p *Parser) parseLogical() (ast.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOperator
		switch p.cursor.current().Kind {
		case token.PipePipe:
			op = ast.Or
		case token.AmpAmp:
			op = ast.And
		default:
			return left, nil
		}
		p.cursor.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{LHS: left, Op: op, RHS: right}
	}
}

func (p *Parser) parseNot() (ast.Expression, error) {
	if p.cursor.check(token.Bang) {
		bangTok := p.cursor.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: bangTok, Op: ast.Not, RHS: operand}, nil
	}
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cursor.check(token.EqualsEquals) {
		p.cursor.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{LHS: left, Op: ast.Equals, RHS: right}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cursor.check(token.RAngle) {
		p.cursor.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{LHS: left, Op: ast.GreaterThan, RHS: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseNegate()
	if err != nil {
		return nil, err
	}
	for p.cursor.check(token.Plus) {
		p.cursor.advance()
		right, err := p.parseNegate()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{LHS: left, Op: ast.Add, RHS: right}
	}
	return left, nil
}

func (p *Parser) parseNegate() (ast.Expression, error) {
	if p.cursor.check(token.Minus) {
		minusTok := p.cursor.advance()
		operand, err := p.parseNegate()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: minusTok, Op: ast.Sub, RHS: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	tok := p.cursor.current()

	switch tok.Kind {
	case token.LParen:
		p.cursor.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "expected ')' to close a parenthesized expression"); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBracket:
		return p.parseListLiteral()

	case token.Int:
		p.cursor.advance()
		return &ast.IntLiteral{Token: tok}, nil

	case token.True:
		p.cursor.advance()
		return &ast.BoolLiteral{Value: true, Token: tok}, nil

	case token.False:
		p.cursor.advance()
		return &ast.BoolLiteral{Value: false, Token: tok}, nil

	case token.Name:
		p.cursor.advance()
		if p.cursor.check(token.LParen) {
			return p.parseCall(tok)
		}
		return &ast.Name{Token: tok}, nil

	case token.If:
		return p.parseIf()

	default:
		return nil, &Error{Kind: UnexpectedToken, OffendingToken: tok, Message: "expected an expression"}
	}
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	lbracket := p.cursor.advance()

	var elements []ast.Expression
	for !p.cursor.check(token.RBracket) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		if _, ok := p.cursor.match(token.Comma); !ok {
			break
		}
	}

	if _, err := p.expect(token.RBracket, "expected ']' to close a list literal"); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Token: lbracket, Elements: elements}, nil
}

func (p *Parser) parseCall(name token.Token) (ast.Expression, error) {
	p.cursor.advance() // consume '('

	var args []ast.Expression
	for !p.cursor.check(token.RParen) {
		a, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if _, ok := p.cursor.match(token.Comma); !ok {
			break
		}
	}

	if _, err := p.expect(token.RParen, "expected ')' to close a call's argument list"); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Name: name, Args: args}, nil
}

// parseIf parses `if cond block (else (if … | block))?`. An `else if` is
// parsed by recursively reading an atom -- which will itself consume the
// nested if -- and wrapping the result in a singleton block, rather than
// by any special-cased chaining.
func (p *Parser) parseIf() (ast.Expression, error) {
	ifTok := p.cursor.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	trueBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock ast.Block
	if _, ok := p.cursor.match(token.Else); ok {
		if p.cursor.check(token.If) {
			nested, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			elseBlock = ast.Block{&ast.ExpressionStatement{Value: nested}}
		} else {
			elseBlock, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}

	return &ast.If{Token: ifTok, Condition: cond, TrueBlock: trueBlock, ElseBlock: elseBlock}, nil
}
