package boolmin

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// parser is a hand-written recursive-descent parser over a byte cursor, in
// the tradition of the original C implementation's pointer-to-pointer
// cursor. It never fails: every diagnostic is routed through log and
// parsing continues with a best-effort substitution.
type parser struct {
	src string
	pos int
	log Logger
}

// Parse parses expression into an Expression tree. Parsing never fails:
// malformed input produces diagnostics (silently discarded here) plus a
// best-effort tree. Use ParseWithLogger to observe diagnostics.
func Parse(expression string) Expression {
	return ParseWithLogger(expression, discardLogger{})
}

// ParseWithLogger parses expression into an Expression tree, routing
// non-fatal warnings (unclosed parenthesis, malformed or out-of-range
// constants, trailing characters) through log.
func ParseWithLogger(expression string, log Logger) Expression {
	if log == nil {
		log = discardLogger{}
	}
	p := &parser{src: expression, log: log}
	e := p.parseExpression()

	p.skipSpace()
	if p.pos < len(p.src) {
		p.log.Warnf(p.position(), "trailing characters %q after expression", p.src[p.pos:])
	}

	return e
}

func (p *parser) position() lexer.Position {
	line, col := 1, 1
	for i := 0; i < p.pos && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return lexer.Position{Offset: p.pos, Line: line, Column: col}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// parseExpression = term (('|' | '+') term)*
func (p *parser) parseExpression() Expression {
	e := p.parseTerm()

	for {
		p.skipSpace()
		switch p.peek() {
		case '|', '+':
			p.pos++
			e = Op(Or, e, p.parseTerm())
		default:
			return e
		}
	}
}

// parseTerm = factor (('&' | '*') factor)*
func (p *parser) parseTerm() Expression {
	e := p.parseFactor()

	for {
		p.skipSpace()
		switch p.peek() {
		case '&', '*':
			p.pos++
			e = Op(And, e, p.parseFactor())
		default:
			return e
		}
	}
}

// parseFactor = primary (implicit-and primary)*, where a new operand
// starts when the next non-space character is '!', '(', or a letter.
func (p *parser) parseFactor() Expression {
	e := p.parsePrimary()

	for {
		p.skipSpace()
		c := p.peek()
		if c == '!' || c == '(' || isAlpha(c) {
			e = Op(And, e, p.parsePrimary())
			continue
		}
		return e
	}
}

// parsePrimary = '!' primary | atom postfix-negations
func (p *parser) parsePrimary() Expression {
	p.skipSpace()

	var primary Expression
	if p.peek() == '!' {
		p.pos++
		primary = Op(Not, p.parsePrimary())
	} else {
		primary = p.parseAtom()
	}

	for {
		p.skipSpace()
		if p.peek() == '\'' {
			p.pos++
			primary = Op(Not, primary)
			continue
		}
		return primary
	}
}

// parseAtom = '(' expression ')' | letter | integer-literal
func (p *parser) parseAtom() Expression {
	p.skipSpace()

	switch {
	case p.peek() == '(':
		p.pos++
		e := p.parseExpression()
		p.skipSpace()
		if p.peek() == ')' {
			p.pos++
		} else {
			p.log.Warnf(p.position(), "unclosed parenthesis %q", p.src[p.pos:])
		}
		return e
	case isAlpha(p.peek()):
		name := p.src[p.pos]
		p.pos++
		return Var(name)
	default:
		return p.parseConstant()
	}
}

func (p *parser) parseConstant() Expression {
	start := p.pos
	end := start
	if end < len(p.src) && (p.src[end] == '+' || p.src[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(p.src) && p.src[end] >= '0' && p.src[end] <= '9' {
		end++
	}

	if end == digitsStart {
		p.log.Warnf(p.position(), "failed to parse constant from %q", p.src[p.pos:])
		return Const(false)
	}

	text := p.src[start:end]
	p.pos = end

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.log.Warnf(p.position(), "constant %q is out of range", text)
	}

	if value != 0 && value != 1 {
		p.log.Warnf(p.position(), "non-zero constant %q will be implicitly converted into a 1", text)
	}

	return Const(value != 0)
}
