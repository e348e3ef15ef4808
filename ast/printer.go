package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer is an ExprVisitor that "pretty-prints" an expression tree as a
// parenthesized Lisp-like form, adapted from the teacher's ASTPrinter.
// Exercised by ast/printer_test.go and by the parser's determinism test
// (parser/parser_test.go), never by the evaluator itself.
type Printer struct{}

// Print renders e as a parenthesized string.
func (p *Printer) Print(e Expr) string {
	return e.Accept(p).(string)
}

// VisitAssignExpr renders `(set! name value)`.
func (p *Printer) VisitAssignExpr(e *AssignExpr) interface{} {
	return p.parenthesize("set! "+e.Name.Lexeme, e.Value)
}

// VisitBinaryExpr renders `(op left right)`.
func (p *Printer) VisitBinaryExpr(e *BinaryExpr) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

// VisitCallExpr renders `(call callee args...)`.
func (p *Printer) VisitCallExpr(e *CallExpr) interface{} {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
}

// VisitGroupingExpr renders `(group inner)`.
func (p *Printer) VisitGroupingExpr(e *GroupingExpr) interface{} {
	return p.parenthesize("group", e.Inner)
}

// VisitLiteralExpr renders a literal's display form.
func (p *Printer) VisitLiteralExpr(e *LiteralExpr) interface{} {
	switch e.Value.Kind {
	case LiteralNumber:
		return strconv.FormatFloat(e.Value.Num, 'g', -1, 64)
	case LiteralString:
		return e.Value.Str
	case LiteralBool:
		return strconv.FormatBool(e.Value.Bool)
	default:
		return "nil"
	}
}

// VisitLogicalExpr renders `(op left right)`.
func (p *Printer) VisitLogicalExpr(e *LogicalExpr) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

// VisitUnaryExpr renders `(op operand)`.
func (p *Printer) VisitUnaryExpr(e *UnaryExpr) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Operand)
}

// VisitVariableExpr renders the bare identifier.
func (p *Printer) VisitVariableExpr(e *VariableExpr) interface{} {
	return e.Name.Lexeme
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(e.Accept(p)))
	}
	b.WriteByte(')')
	return b.String()
}
