package lisp_test

import (
	"testing"

	"github.com/jamied157/jdlisp"
)

func TestPairLength(t *testing.T) {
	t.Parallel()
	q := lisp.MakeQExpr(lisp.Num(1), lisp.Num(2), lisp.Num(3))
	if got := q.Length(); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
}

func TestPairNth(t *testing.T) {
	t.Parallel()
	p := lisp.MakeList(lisp.Num(1), lisp.Num(2), lisp.Num(3))
	v, err := p.Nth(1)
	if err != nil {
		t.Fatalf("Nth(1) error: %v", err)
	}
	if !v.Equal(lisp.Num(2)) {
		t.Errorf("Nth(1) = %v, want 2", v)
	}
}

func TestPairCopyIndependence(t *testing.T) {
	t.Parallel()
	orig := lisp.MakeQExpr(lisp.Num(1), lisp.Num(2))
	cp := orig.Copy().(lisp.QExpr)
	if !orig.Equal(cp) {
		t.Fatalf("copy should be equal to original before mutation")
	}
	cp.Pairs().SetCar(lisp.Num(99))
	if orig.Elements()[0].Equal(lisp.Num(99)) {
		t.Errorf("mutating a copy affected the original: %v", orig)
	}
}

func TestSExprPrint(t *testing.T) {
	t.Parallel()
	s := lisp.MakeSExpr(lisp.Num(1), lisp.Sym("x"))
	if got, want := s.String(), "(1 x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQExprPrint(t *testing.T) {
	t.Parallel()
	q := lisp.MakeQExpr(lisp.Num(1), lisp.Num(2))
	if got, want := q.String(), "{1 2}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEmptyQExprIsAtom(t *testing.T) {
	t.Parallel()
	q := lisp.MakeQExpr()
	if !q.IsAtom() {
		t.Error("empty QExpr should be atomic")
	}
}
