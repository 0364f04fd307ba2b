package parser

import (
	"fmt"
	"strconv"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/gicerr"
)

// Parser is a recursive-descent parser over a token stream, implementing
// the precedence table "not" > "forall"/"exists" > "and" (left) > "or"
// (left) > "impl" (right), with parenthesized grouping and list sugar
// ([], [a,b,c], [H|T]) desugared to cons/empty_list at parse time.
type Parser struct {
	toks []token
	pos  int
}

// ParseClauses splits src on top-level ';' clause terminators and parses
// each as a standalone Expression.
func ParseClauses(src string) ([]ast.Expression, error) {
	toks, err := newLexer(src).tokenize()
	if err != nil {
		return nil, gicerr.Wrap(gicerr.KindParse, err, "tokenizing source")
	}
	p := &Parser{toks: toks}

	var out []ast.Expression
	for p.peek().kind != tokEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, gicerr.Wrap(gicerr.KindParse, err, "parsing clause")
		}
		if err := p.expect(tokSemi); err != nil {
			return nil, gicerr.Wrap(gicerr.KindParse, err, "expected ';' after clause")
		}
		out = append(out, expr)
	}
	return out, nil
}

// ParseQuery parses a single formula with no trailing ';' terminator, as
// used by the REPL's interactive query command.
func ParseQuery(src string) (ast.Expression, error) {
	toks, err := newLexer(src).tokenize()
	if err != nil {
		return nil, gicerr.Wrap(gicerr.KindParse, err, "tokenizing query")
	}
	p := &Parser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, gicerr.Wrap(gicerr.KindParse, err, "parsing query")
	}
	if p.peek().kind != tokEOF {
		return nil, gicerr.New(gicerr.KindParse, "unexpected trailing input %q", p.peek().text)
	}
	return expr, nil
}

func (p *Parser) peek() token { return p.toks[p.pos] }

func (p *Parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind tokenKind) error {
	if p.peek().kind != kind {
		return fmt.Errorf("unexpected token %q at offset %d", p.peek().text, p.peek().pos)
	}
	p.advance()
	return nil
}

func (p *Parser) parseExpr() (ast.Expression, error) { return p.parseImpl() }

func (p *Parser) parseImpl() (ast.Expression, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImpl {
		p.advance()
		right, err := p.parseImpl()
		if err != nil {
			return nil, err
		}
		return ast.Implies{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseQuant()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.advance()
		right, err := p.parseQuant()
		if err != nil {
			return nil, err
		}
		left = ast.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseQuant() (ast.Expression, error) {
	switch p.peek().kind {
	case tokForall:
		p.advance()
		name, err := p.expectVar()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokDot); err != nil {
			return nil, err
		}
		inner, err := p.parseQuant()
		if err != nil {
			return nil, err
		}
		return ast.ForAll{Var: name, Inner: inner}, nil

	case tokExists:
		p.advance()
		name, err := p.expectVar()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokDot); err != nil {
			return nil, err
		}
		inner, err := p.parseQuant()
		if err != nil {
			return nil, err
		}
		return ast.Exists{Var: name, Inner: inner}, nil

	default:
		return p.parseNot()
	}
}

func (p *Parser) expectVar() (string, error) {
	if p.peek().kind != tokVar {
		return "", fmt.Errorf("expected a variable name at offset %d, got %q", p.peek().pos, p.peek().text)
	}
	return p.advance().text, nil
}

func (p *Parser) parseNot() (ast.Expression, error) {
	if p.peek().kind == tokNot {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.Not{Inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.peek().kind {
	case tokLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case tokBottom:
		p.advance()
		return ast.Bottom{}, nil

	case tokIdent, tokVar:
		// Predicate names conventionally start with an uppercase letter,
		// so the lexer's variable token is accepted here as well.
		prop, err := p.parseProposition()
		if err != nil {
			return nil, err
		}
		return ast.PropositionExpr{Prop: prop}, nil

	default:
		return nil, fmt.Errorf("unexpected token %q at offset %d", p.peek().text, p.peek().pos)
	}
}

func (p *Parser) parseProposition() (ast.Proposition, error) {
	name := p.advance().text
	if p.peek().kind != tokLParen {
		return ast.Proposition{Name: name}, nil
	}
	p.advance()
	if p.peek().kind == tokRParen {
		p.advance()
		return ast.Proposition{Name: name}, nil
	}
	terms, err := p.parseTermList()
	if err != nil {
		return ast.Proposition{}, err
	}
	if err := p.expect(tokRParen); err != nil {
		return ast.Proposition{}, err
	}
	return ast.Proposition{Name: name, Terms: terms}, nil
}

func (p *Parser) parseTermList() ([]ast.Term, error) {
	var terms []ast.Term
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
		if p.peek().kind != tokComma {
			return terms, nil
		}
		p.advance()
	}
}

func (p *Parser) parseTerm() (ast.Term, error) {
	switch p.peek().kind {
	case tokVar:
		return ast.Var{Name: p.advance().text}, nil

	case tokNumber:
		text := p.advance().text
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %q: %w", text, err)
		}
		return ast.Num{Value: n}, nil

	case tokLBracket:
		return p.parseListTerm()

	case tokIdent:
		name := p.advance().text
		if p.peek().kind != tokLParen {
			return ast.Atom(name), nil
		}
		p.advance()
		if p.peek().kind == tokRParen {
			p.advance()
			return ast.Atom(name), nil
		}
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return ast.Fun{Name: name, Args: args}, nil

	default:
		return nil, fmt.Errorf("unexpected token %q at offset %d while parsing a term", p.peek().text, p.peek().pos)
	}
}

// parseListTerm parses "[" already-consumed-bracket-free list body "]",
// handling the empty list, a flat element list, and an explicit [H|T]
// tail.
func (p *Parser) parseListTerm() (ast.Term, error) {
	p.advance() // consume '['
	if p.peek().kind == tokRBracket {
		p.advance()
		return ast.EmptyList, nil
	}

	var elems []ast.Term
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
		switch p.peek().kind {
		case tokComma:
			p.advance()
			continue
		case tokPipe:
			p.advance()
			tail, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			if err := p.expect(tokRBracket); err != nil {
				return nil, err
			}
			result := tail
			for i := len(elems) - 1; i >= 0; i-- {
				result = ast.Cons(elems[i], result)
			}
			return result, nil
		case tokRBracket:
			p.advance()
			return ast.List(elems...), nil
		default:
			return nil, fmt.Errorf("unexpected token %q at offset %d inside list literal", p.peek().text, p.peek().pos)
		}
	}
}
