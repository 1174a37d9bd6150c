package env

import (
	"testing"

	"loxwalk/ast"
)

func tok(name string) ast.Token {
	return ast.Token{TokenType: ast.TokenIdentifier, Lexeme: name, Line: 1}
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	e := New(nil)
	e.Define("a", 1.0)

	got, err := e.Get(tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestEnvironment_GetUndefinedReturnsRuntimeError(t *testing.T) {
	e := New(nil)
	_, err := e.Get(tok("missing"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	want := "Undefined variable 'missing'.\n[line 1]"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestEnvironment_AssignWalksEnclosingScope(t *testing.T) {
	outer := New(nil)
	outer.Define("a", 1.0)
	inner := New(outer)

	if err := inner.Assign(tok("a"), 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := outer.Get(tok("a"))
	if got != 2.0 {
		t.Fatalf("got %v, want 2.0 in outer scope", got)
	}
}

func TestEnvironment_AssignUndefinedIsAnError(t *testing.T) {
	e := New(nil)
	err := e.Assign(tok("missing"), 1.0)
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestEnvironment_DefineNeverCreatesInEnclosing(t *testing.T) {
	outer := New(nil)
	inner := New(outer)
	inner.Define("a", 1.0)

	if _, err := outer.Get(tok("a")); err == nil {
		t.Fatalf("expected outer scope not to see inner's definition")
	}
}

func TestEnvironment_ShadowingInInnerScope(t *testing.T) {
	outer := New(nil)
	outer.Define("a", "outer")
	inner := New(outer)
	inner.Define("a", "inner")

	got, _ := inner.Get(tok("a"))
	if got != "inner" {
		t.Fatalf("got %v, want inner shadow to win", got)
	}

	outerGot, _ := outer.Get(tok("a"))
	if outerGot != "outer" {
		t.Fatalf("got %v, want outer binding untouched", outerGot)
	}
}
