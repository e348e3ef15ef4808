package interp

import (
	"strconv"

	"github.com/glox-lang/glox/ast"
)

// Kind tags which field of Value is meaningful, implementing the spec's
// RuntimeValue tagged variant (Nil, Bool, Number, String, Callable).
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindCallable
)

// Value is a runtime Lox value. Only the field matching Kind is meaningful.
type Value struct {
	Kind     Kind
	Num      float64
	Str      string
	Bool     bool
	Callable *Callable
}

// Callable pairs an owned function AST node with the environment captured
// at definition time -- the closure. Native is set instead of Decl/Closure
// for host-provided functions such as clock(); see natives.go.
type Callable struct {
	Decl    *ast.FunctionStmt
	Closure *Environment

	NativeName  string
	NativeArity int
	Native      func(args []Value) (Value, error)
}

// IsNative reports whether c is a host-provided function rather than one
// declared in source.
func (c *Callable) IsNative() bool { return c.Native != nil }

// Arity returns the number of parameters c expects.
func (c *Callable) Arity() int {
	if c.IsNative() {
		return c.NativeArity
	}
	return len(c.Decl.Params)
}

// Name returns c's display name, used by Stringify.
func (c *Callable) Name() string {
	if c.IsNative() {
		return c.NativeName
	}
	return c.Decl.Name.Lexeme
}

// Nil is the shared Nil Value.
var Nil = Value{Kind: KindNil}

// BoolValue builds a Bool Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue builds a Number Value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// StringValue builds a String Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// CallableValue wraps a Callable as a Value.
func CallableValue(c *Callable) Value { return Value{Kind: KindCallable, Callable: c} }

// IsTruthy implements the spec's (deliberately non-canonical) truthiness
// table: Nil is false, Bool is itself, Number(0) is false and every other
// number is true, strings and callables are always true.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num != 0
	default:
		return true
	}
}

// Equals implements the spec's polymorphic `==`: tags must match, Nil==Nil
// is true, numbers compare under normal float64 equality (so NaN != NaN),
// and cross-tag comparisons are never equal.
func Equals(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Num == b.Num
	case KindString:
		return a.Str == b.Str
	case KindCallable:
		return a.Callable == b.Callable
	default:
		return false
	}
}

// Stringify renders a Value the way `print` and the REPL display it.
func Stringify(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return v.Str
	case KindCallable:
		return "<fn " + v.Callable.Name() + ">"
	default:
		return "nil"
	}
}
