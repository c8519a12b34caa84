package boolmin

import "strings"

// String renders e in canonical form:
//
//	Constant(v)  -> "0" or "1"
//	Variable(c)  -> the single letter
//	And(a, b)    -> joined by " * " if either operand is a constant,
//	                otherwise by juxtaposition; lower-precedence operands
//	                are parenthesized
//	Or(a, b)     -> joined by " + "; left operand parenthesized if strictly
//	                lower precedence, right if lower-or-equal
//	Not(a)       -> operand followed by "'"; parenthesized if strictly
//	                lower precedence
func (e Expression) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e Expression) writeTo(b *strings.Builder) {
	switch e.Kind {
	case KindConstant:
		if e.Const {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case KindVariable:
		b.WriteByte(e.Var)
	case KindOperation:
		switch e.Op {
		case And, Or:
			left, right := e.Operands[0], e.Operands[1]

			writeOperand(b, left, left.Kind == KindOperation && left.Op.Precedence() < e.Op.Precedence())

			rightParen := right.Kind == KindOperation
			if e.Op == And {
				if left.Kind == KindConstant || right.Kind == KindConstant {
					b.WriteString(" * ")
				}
				rightParen = rightParen && right.Op.Precedence() < e.Op.Precedence()
			} else {
				b.WriteString(" + ")
				rightParen = rightParen && right.Op.Precedence() <= e.Op.Precedence()
			}
			writeOperand(b, right, rightParen)
		case Not:
			operand := e.Operands[0]
			writeOperand(b, operand, operand.Kind == KindOperation && operand.Op.Precedence() < Not.Precedence())
			b.WriteByte('\'')
		default:
			panic("boolmin: unknown operator")
		}
	default:
		panic("boolmin: unknown expression kind")
	}
}

func writeOperand(b *strings.Builder, e Expression, parenthesize bool) {
	if parenthesize {
		b.WriteByte('(')
		e.writeTo(b)
		b.WriteByte(')')
		return
	}
	e.writeTo(b)
}
