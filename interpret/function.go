package interpret

import (
	"loxwalk/ast"
	"loxwalk/env"
)

// callable is anything that can appear as the callee of a CallExpr: a
// user-defined function or a native builtin such as clock.
type callable interface {
	arity() int
	call(in *Interpreter, args []interface{}) interface{}
	String() string
}

// function is a named, statement-level function declaration. Its closure is
// the environment active at the point of declaration, not at the point of
// call, so a function sees the variables lexically in scope around it even
// after the scope that declared it has returned.
type function struct {
	declaration ast.FunctionStmt
	closure     *env.Environment
}

func (f function) arity() int {
	return len(f.declaration.Params)
}

func (f function) call(in *Interpreter, args []interface{}) (returnVal interface{}) {
	defer func() {
		if err := recover(); err != nil {
			if v, ok := err.(returnSignal); ok {
				returnVal = v.value
				return
			}
			panic(err)
		}
	}()

	callEnv := env.New(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	in.executeBlock(f.declaration.Body, callEnv)
	return nil
}

func (f function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// functionExpr is an anonymous (or self-referencing) function literal. Its
// closure is its own freshly allocated environment wrapping the declaring
// scope, so a named functionExpr can bind its own name for recursion
// without polluting the declaring scope.
type functionExpr struct {
	declaration ast.FunctionExpr
	closure     *env.Environment
}

func (f functionExpr) arity() int {
	return len(f.declaration.Params)
}

func (f functionExpr) call(in *Interpreter, args []interface{}) (returnVal interface{}) {
	defer func() {
		if err := recover(); err != nil {
			if v, ok := err.(returnSignal); ok {
				returnVal = v.value
				return
			}
			panic(err)
		}
	}()

	callEnv := env.New(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	in.executeBlock(f.declaration.Body, callEnv)
	return nil
}

func (f functionExpr) String() string {
	if f.declaration.Name != nil {
		return "<fn " + f.declaration.Name.Lexeme + ">"
	}
	return "<fn>"
}
