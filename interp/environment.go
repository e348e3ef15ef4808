package interp

import (
	"fmt"

	"github.com/glox-lang/glox/arena"
	"github.com/glox-lang/glox/token"
)

// Environment is a persistent, lexically-scoped chain of name -> arena
// index bindings. It is a value-type snapshot in the sense described by
// the spec: Define never mutates bindings in place, it returns a new
// Environment that shares the old one's entries plus the new one. This is
// what lets a Callable capture "the environment at definition time" and
// have that snapshot remain stable even as later statements in the same
// block go on to define more names -- the teacher's environment.go instead
// mutated a shared map in place, which the arena-indirection + persistent-
// snapshot design replaces.
type Environment struct {
	enclosing *Environment
	bindings  map[string]arena.Index
}

// NewEnvironment returns an empty Environment enclosed by parent (nil for
// the global scope).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, bindings: map[string]arena.Index{}}
}

// Enclose returns a fresh, empty Environment whose enclosing scope is e --
// the scope used when entering a block or a function call.
func (e *Environment) Enclose() *Environment {
	return NewEnvironment(e)
}

// Define returns a new Environment identical to e except that name now
// resolves to idx. e itself is left untouched, so any Callable that has
// already captured e is unaffected.
func (e *Environment) Define(name string, idx arena.Index) *Environment {
	next := &Environment{enclosing: e.enclosing, bindings: make(map[string]arena.Index, len(e.bindings)+1)}
	for k, v := range e.bindings {
		next.bindings[k] = v
	}
	next.bindings[name] = idx
	return next
}

// Resolve walks the scope chain outward looking for name, returning its
// arena index.
func (e *Environment) Resolve(name string) (arena.Index, bool) {
	for env := e; env != nil; env = env.enclosing {
		if idx, ok := env.bindings[name]; ok {
			return idx, true
		}
	}
	return 0, false
}

// RuntimeError pairs the offending token with a human-readable message,
// following the teacher's RuntimeError type.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", r.Msg, r.Token.Line)
}

func undefinedVariable(name token.Token) error {
	return &RuntimeError{Token: name, Msg: "Undefined variable '" + name.Lexeme + "'."}
}
