package reader_test

import (
	"testing"

	"github.com/jamied157/jdlisp"
	"github.com/jamied157/jdlisp/ast"
	"github.com/jamied157/jdlisp/reader"
)

func TestReadNumber(t *testing.T) {
	t.Parallel()
	n := &ast.Node{Tag: "number|regex", Contents: "42"}
	got := reader.Read(n)
	if !got.Equal(lisp.Num(42)) {
		t.Errorf("Read(number) = %v, want 42", got)
	}
}

func TestReadInvalidNumber(t *testing.T) {
	t.Parallel()
	n := &ast.Node{Tag: "number|regex", Contents: "not-a-number"}
	got := reader.Read(n)
	errv, ok := got.(lisp.Err)
	if !ok || errv.Msg != "invalid number" {
		t.Errorf("Read(bad number) = %v, want Err(invalid number)", got)
	}
}

func TestReadString(t *testing.T) {
	t.Parallel()
	n := &ast.Node{Tag: "string|regex", Contents: `"a\nb"`}
	got := reader.Read(n)
	if got.(lisp.Str) != "a\nb" {
		t.Errorf("Read(string) = %q, want %q", got, "a\nb")
	}
}

func TestReadSExprSkipsPunctuation(t *testing.T) {
	t.Parallel()
	root := &ast.Node{
		Tag: "sexpr",
		Children: []*ast.Node{
			{Tag: "char", Contents: "("},
			{Tag: "number|regex", Contents: "1"},
			{Tag: "number|regex", Contents: "2"},
			{Tag: "char", Contents: ")"},
		},
	}
	got := reader.Read(root).(lisp.SExpr)
	want := lisp.MakeSExpr(lisp.Num(1), lisp.Num(2))
	if !got.Equal(want) {
		t.Errorf("Read(sexpr) = %v, want %v", got, want)
	}
}

func TestReadQExpr(t *testing.T) {
	t.Parallel()
	root := &ast.Node{
		Tag: "qexpr",
		Children: []*ast.Node{
			{Tag: "char", Contents: "{"},
			{Tag: "symbol|regex", Contents: "x"},
			{Tag: "char", Contents: "}"},
		},
	}
	got := reader.Read(root).(lisp.QExpr)
	want := lisp.MakeQExpr(lisp.Sym("x"))
	if !got.Equal(want) {
		t.Errorf("Read(qexpr) = %v, want %v", got, want)
	}
}
