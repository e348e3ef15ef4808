package ast

import "github.com/glox-lang/glox/token"

// StmtVisitor is implemented by anything that walks a Stmt tree.
type StmtVisitor interface {
	VisitBlockStmt(s *BlockStmt) interface{}
	VisitExpressionStmt(s *ExpressionStmt) interface{}
	VisitFunctionStmt(s *FunctionStmt) interface{}
	VisitIfStmt(s *IfStmt) interface{}
	VisitPrintStmt(s *PrintStmt) interface{}
	VisitReturnStmt(s *ReturnStmt) interface{}
	VisitVarStmt(s *VarStmt) interface{}
	VisitWhileStmt(s *WhileStmt) interface{}
}

// Stmt is the base interface of every statement AST node.
type Stmt interface {
	Accept(v StmtVisitor) interface{}
}

// BlockStmt is a `{ ... }` sequence of statements sharing one new scope.
type BlockStmt struct {
	Statements []Stmt
}

// Accept dispatches to the visitor's Block handler.
func (s *BlockStmt) Accept(v StmtVisitor) interface{} { return v.VisitBlockStmt(s) }

// ExpressionStmt evaluates Expr for its side effects, discarding the result.
type ExpressionStmt struct {
	Expr Expr
}

// Accept dispatches to the visitor's Expression handler.
func (s *ExpressionStmt) Accept(v StmtVisitor) interface{} { return v.VisitExpressionStmt(s) }

// FunctionStmt declares a named function; Params is an ordered parameter
// name list and Body its statement sequence.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Accept dispatches to the visitor's Function handler.
func (s *FunctionStmt) Accept(v StmtVisitor) interface{} { return v.VisitFunctionStmt(s) }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when no else clause is present
}

// Accept dispatches to the visitor's If handler.
func (s *IfStmt) Accept(v StmtVisitor) interface{} { return v.VisitIfStmt(s) }

// PrintStmt evaluates Expr and writes its display form followed by a newline.
type PrintStmt struct {
	Expr Expr
}

// Accept dispatches to the visitor's Print handler.
func (s *PrintStmt) Accept(v StmtVisitor) interface{} { return v.VisitPrintStmt(s) }

// ReturnStmt unwinds to the nearest enclosing call with Value's result.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil means bare `return;`, evaluates to Nil
}

// Accept dispatches to the visitor's Return handler.
func (s *ReturnStmt) Accept(v StmtVisitor) interface{} { return v.VisitReturnStmt(s) }

// VarStmt declares Name, optionally initialized by Init (nil means `nil`).
type VarStmt struct {
	Name token.Token
	Init Expr
}

// Accept dispatches to the visitor's Var handler.
func (s *VarStmt) Accept(v StmtVisitor) interface{} { return v.VisitVarStmt(s) }

// WhileStmt loops Body while Condition stays truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// Accept dispatches to the visitor's While handler.
func (s *WhileStmt) Accept(v StmtVisitor) interface{} { return v.VisitWhileStmt(s) }
