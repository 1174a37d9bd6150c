// Package env implements the lexically scoped environment chain that maps
// identifier names to runtime values.
package env

import (
	"fmt"

	"loxwalk/ast"
)

// RuntimeError is returned by Get and Assign when a name is undefined. It
// carries the offending token so callers can report a source line.
type RuntimeError struct {
	Token ast.Token
	Msg   string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Token.Line)
}

// Environment is a single scope: a map of name to value, plus an optional
// link to the scope that encloses it. It forms a tree rooted at a single
// globals Environment; a child must never outlive its parent, though
// Environment itself does not enforce that — it is a plain reference graph
// owned top-down by whoever holds the innermost node.
type Environment struct {
	Enclosing *Environment
	values    map[string]interface{}
}

// New returns a fresh Environment enclosed by the given (possibly nil) parent.
func New(enclosing *Environment) *Environment {
	return &Environment{Enclosing: enclosing, values: make(map[string]interface{})}
}

// Define unconditionally binds name to value in this scope, shadowing any
// outer binding of the same name. At the global scope, redefining a name
// simply overwrites it. Define never touches an enclosing scope.
func (e *Environment) Define(name string, value interface{}) {
	if e.values == nil {
		e.values = make(map[string]interface{})
	}
	e.values[name] = value
}

// Get returns the value bound to name in the nearest enclosing scope that
// defines it. It never creates a binding.
func (e *Environment) Get(name ast.Token) (interface{}, error) {
	if val, ok := e.values[name.Lexeme]; ok {
		return val, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign mutates the nearest enclosing binding of name to value. It never
// creates a new binding; if no enclosing scope defines name, it reports an
// undefined-variable error.
func (e *Environment) Assign(name ast.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
