// Package interp walks the AST built by the parser under a lexically
// scoped environment model with first-class function values and closures,
// following the teacher's (archevan-glox) Visitor-based tree-walk while
// replacing its map-based Environment with the spec's arena-indirection
// model (see environment.go, arena.Arena) so that two closures sharing a
// scope observe each other's assignments.
package interp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glox-lang/glox/arena"
	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/token"
)

// returnSignal is the non-local-return control-flow signal described by the
// spec: it unwinds through arbitrarily nested constructs up to the nearest
// pending Call, is never a RuntimeError, and must never reach user code.
// This is the idiomatic-Go analogue of original_source's ReturnValueError
// + downcast, and of the teacher's convention of stashing a sentinel in
// in.resultVal and type-switching on it at each call site.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "internal: uncaught return" }

// Interpreter walks statements and expressions, threading the current
// environment, the shared value arena, and captured stdout through the
// recursive Visit calls.
type Interpreter struct {
	env  *Environment
	vars *arena.Arena[Value]

	stdout strings.Builder
	out    io.Writer
}

// New returns an Interpreter that also mirrors `print` output to w (pass
// nil to suppress external output and only capture it).
func New(w io.Writer) *Interpreter {
	in := &Interpreter{
		env:  NewEnvironment(nil),
		vars: arena.New[Value](),
		out:  w,
	}
	in.defineNatives()
	return in
}

// NewDefault returns an Interpreter that mirrors `print` output to os.Stdout.
func NewDefault() *Interpreter {
	return New(os.Stdout)
}

// Interpret executes statements in order and returns everything `print`
// wrote, or the first error encountered.
func (in *Interpreter) Interpret(statements []ast.Stmt) (string, error) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			if _, isReturn := err.(*returnSignal); isReturn {
				return in.stdout.String(), fmt.Errorf("internal error: return outside of a function")
			}
			return in.stdout.String(), err
		}
	}
	return in.stdout.String(), nil
}

func (in *Interpreter) execute(s ast.Stmt) error {
	result := s.Accept(in)
	if err, ok := result.(error); ok {
		return err
	}
	return nil
}

func (in *Interpreter) evaluate(e ast.Expr) (Value, error) {
	result := e.Accept(in)
	if err, ok := result.(error); ok {
		return Value{}, err
	}
	return result.(Value), nil
}

// ---- statements ----

// VisitBlockStmt creates a child environment, evaluates every statement in
// it, and restores the prior environment on every exit path (normal,
// error, or non-local return).
func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) interface{} {
	return in.executeBlock(s.Statements, in.env.Enclose())
}

func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) interface{} {
	prior := in.env
	in.env = env
	defer func() { in.env = prior }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitExpressionStmt evaluates its expression and discards the result.
func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) interface{} {
	_, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	return nil
}

// VisitFunctionStmt implements the spec's recursion-enabling sequence:
// pre-bind the name to Nil, capture that environment as the closure,
// then overwrite the slot with the real Callable -- same index, now
// pointing at the function value, so a recursive call sees itself.
func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) interface{} {
	idx := in.vars.Insert(Nil)
	newEnv := in.env.Define(s.Name.Lexeme, idx)

	callable := CallableValue(&Callable{Decl: s, Closure: newEnv})
	if err := in.vars.Set(idx, callable); err != nil {
		return &RuntimeError{Token: s.Name, Msg: err.Error()}
	}

	in.env = newEnv
	return nil
}

// VisitIfStmt branches on the condition's truthiness.
func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) interface{} {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if cond.IsTruthy() {
		return in.execute(s.Then)
	} else if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

// VisitPrintStmt evaluates its expression, appends `value + "\n"` to the
// captured output, and mirrors it to the external writer if one is set.
func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) interface{} {
	val, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	line := Stringify(val)
	in.stdout.WriteString(line)
	in.stdout.WriteByte('\n')
	if in.out != nil {
		fmt.Fprintln(in.out, line)
	}
	return nil
}

// VisitReturnStmt evaluates its value (or Nil for a bare `return;`) and
// propagates it as a returnSignal for the nearest Call to intercept.
func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) interface{} {
	val := Nil
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		val = v
	}
	return &returnSignal{value: val}
}

// VisitVarStmt evaluates the initializer (or Nil) and defines name in the
// current scope, superseding it with the new environment for subsequent
// statements in this block.
func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) interface{} {
	val := Nil
	if s.Init != nil {
		v, err := in.evaluate(s.Init)
		if err != nil {
			return err
		}
		val = v
	}
	idx := in.vars.Insert(val)
	in.env = in.env.Define(s.Name.Lexeme, idx)
	return nil
}

// VisitWhileStmt loops while Condition stays truthy. Cancellation only
// happens via a Return signal propagating out of Body.
func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) interface{} {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !cond.IsTruthy() {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

// ---- expressions ----

// VisitAssignExpr evaluates Value, resolves Name's arena slot through the
// scope chain, and overwrites it -- visible to every environment sharing
// that index, which is how closures observe each other's assignments.
func (in *Interpreter) VisitAssignExpr(e *ast.AssignExpr) interface{} {
	val, err := in.evaluate(e.Value)
	if err != nil {
		return err
	}
	idx, ok := in.env.Resolve(e.Name.Lexeme)
	if !ok {
		return undefinedVariable(e.Name)
	}
	if err := in.vars.Set(idx, val); err != nil {
		return &RuntimeError{Token: e.Name, Msg: err.Error()}
	}
	return val
}

// VisitBinaryExpr evaluates both operands then applies the operator.
func (in *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) interface{} {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return err
	}

	switch e.Op.Type {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
		token.Minus, token.Slash, token.Star:
		if err := checkNumberOperands(e.Op, left, right); err != nil {
			return err
		}
		switch e.Op.Type {
		case token.Greater:
			return BoolValue(left.Num > right.Num)
		case token.GreaterEqual:
			return BoolValue(left.Num >= right.Num)
		case token.Less:
			return BoolValue(left.Num < right.Num)
		case token.LessEqual:
			return BoolValue(left.Num <= right.Num)
		case token.Minus:
			return NumberValue(left.Num - right.Num)
		case token.Slash:
			return NumberValue(left.Num / right.Num)
		case token.Star:
			return NumberValue(left.Num * right.Num)
		}
	case token.Plus:
		if left.Kind == KindNumber && right.Kind == KindNumber {
			return NumberValue(left.Num + right.Num)
		}
		if left.Kind == KindString && right.Kind == KindString {
			return StringValue(left.Str + right.Str)
		}
		return &RuntimeError{Token: e.Op, Msg: "Operands must be two numbers or two strings."}
	case token.BangEqual:
		return BoolValue(!Equals(left, right))
	case token.EqualEqual:
		return BoolValue(Equals(left, right))
	}
	return &RuntimeError{Token: e.Op, Msg: "Unsupported binary operator."}
}

// VisitCallExpr evaluates the callee and arguments left-to-right, checks
// arity, binds parameters in a fresh environment enclosing the callee's
// captured closure, and evaluates its body, converting a Return signal
// into the call's result and restoring the prior environment on every
// exit path.
func (in *Interpreter) VisitCallExpr(e *ast.CallExpr) interface{} {
	calleeVal, err := in.evaluate(e.Callee)
	if err != nil {
		return err
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	if calleeVal.Kind != KindCallable {
		return &RuntimeError{Token: e.Paren, Msg: "Can only call functions and classes."}
	}
	fn := calleeVal.Callable

	if len(args) != fn.Arity() {
		return &RuntimeError{
			Token: e.Paren,
			Msg:   fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}

	if fn.IsNative() {
		v, err := fn.Native(args)
		if err != nil {
			return &RuntimeError{Token: e.Paren, Msg: err.Error()}
		}
		return v
	}

	callEnv := fn.Closure.Enclose()
	for i, param := range fn.Decl.Params {
		idx := in.vars.Insert(args[i])
		callEnv = callEnv.Define(param.Lexeme, idx)
	}

	prior := in.env
	in.env = callEnv
	defer func() { in.env = prior }()

	for _, stmt := range fn.Decl.Body {
		if err := in.execute(stmt); err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return ret.value
			}
			return err
		}
	}
	return Nil
}

// VisitGroupingExpr evaluates the parenthesized inner expression.
func (in *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) interface{} {
	val, err := in.evaluate(e.Inner)
	if err != nil {
		return err
	}
	return val
}

// VisitLiteralExpr maps a parsed literal to its RuntimeValue one-to-one.
func (in *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) interface{} {
	switch e.Value.Kind {
	case ast.LiteralNumber:
		return NumberValue(e.Value.Num)
	case ast.LiteralString:
		return StringValue(e.Value.Str)
	case ast.LiteralBool:
		return BoolValue(e.Value.Bool)
	default:
		return Nil
	}
}

// VisitLogicalExpr short-circuits: `or` returns the left value unchanged
// when it is truthy, `and` returns it unchanged when it is falsy;
// otherwise the right operand is evaluated and returned.
func (in *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) interface{} {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return err
	}
	if e.Op.Type == token.Or {
		if left.IsTruthy() {
			return left
		}
	} else {
		if !left.IsTruthy() {
			return left
		}
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return err
	}
	return right
}

// VisitUnaryExpr applies `!` (logical not of truthiness) or `-` (numeric
// negation, requires a number operand).
func (in *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) interface{} {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return err
	}
	switch e.Op.Type {
	case token.Bang:
		return BoolValue(!operand.IsTruthy())
	case token.Minus:
		if operand.Kind != KindNumber {
			return &RuntimeError{Token: e.Op, Msg: "Operand must be a number."}
		}
		return NumberValue(-operand.Num)
	}
	return &RuntimeError{Token: e.Op, Msg: "Unsupported unary operator."}
}

// VisitVariableExpr looks up Name through the environment chain.
func (in *Interpreter) VisitVariableExpr(e *ast.VariableExpr) interface{} {
	idx, ok := in.env.Resolve(e.Name.Lexeme)
	if !ok {
		return undefinedVariable(e.Name)
	}
	val, ok := in.vars.Get(idx)
	if !ok {
		return &RuntimeError{Token: e.Name, Msg: "Variable was unexpectedly deallocated."}
	}
	return val
}

func checkNumberOperands(op token.Token, left, right Value) error {
	if left.Kind != KindNumber || right.Kind != KindNumber {
		return &RuntimeError{Token: op, Msg: "Operands must be numbers."}
	}
	return nil
}
