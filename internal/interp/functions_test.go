package interp

import "testing"

func TestFunctionTableLooksUpBuiltins(t *testing.T) {
	ft := NewFunctionTable()
	entry, ok := ft.Lookup("abs")
	if !ok {
		t.Fatal("expected builtin 'abs' to be registered")
	}
	if entry.IsUser() {
		t.Fatal("builtin entry reported IsUser() == true")
	}
	if entry.Arity != 1 {
		t.Fatalf("Arity = %d, want 1", entry.Arity)
	}
}

func TestFunctionTableDefineAndResetUser(t *testing.T) {
	ft := NewFunctionTable()
	if err := ft.Define("square", []string{"x"}, "x * x"); err != nil {
		t.Fatalf("Define: %v", err)
	}

	entry, ok := ft.Lookup("square")
	if !ok || !entry.IsUser() || entry.Arity != 1 || entry.Body != "x * x" {
		t.Fatalf("entry = %+v, ok = %v", entry, ok)
	}

	ft.ResetUser()
	if _, ok := ft.Lookup("square"); ok {
		t.Fatal("user function should be gone after ResetUser")
	}
	if _, ok := ft.Lookup("abs"); !ok {
		t.Fatal("builtins must survive ResetUser")
	}
}

func TestFunctionTableDefineDuplicateRejected(t *testing.T) {
	ft := NewFunctionTable()
	if err := ft.Define("double", []string{"x"}, "x * 2"); err != nil {
		t.Fatalf("Define: %v", err)
	}
	if err := ft.Define("double", []string{"x"}, "x * 3"); err == nil {
		t.Fatal("expected an error redefining an existing function")
	}
	if err := ft.Define("abs", []string{"x"}, "x"); err == nil {
		t.Fatal("expected an error shadowing a builtin")
	}
}
