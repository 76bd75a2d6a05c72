package lisp_test

import (
	"testing"

	"github.com/jamied157/jdlisp"
)

func TestEnvGetUnbound(t *testing.T) {
	t.Parallel()
	env := lisp.NewEnv(nil)
	v := env.Get("x")
	errv, ok := v.(lisp.Err)
	if !ok {
		t.Fatalf("Get on unbound symbol = %v, want Err", v)
	}
	if want := "Unbound Symbol 'x'."; errv.Msg != want {
		t.Errorf("Err message = %q, want %q", errv.Msg, want)
	}
}

func TestEnvPutIsLocal(t *testing.T) {
	t.Parallel()
	root := lisp.NewEnv(nil)
	root.Def("x", lisp.Num(1))
	child := lisp.NewEnv(root)
	child.Put("x", lisp.Num(2))

	if got := child.Get("x"); !got.Equal(lisp.Num(2)) {
		t.Errorf("child Get(x) = %v, want 2", got)
	}
	if got := root.Get("x"); !got.Equal(lisp.Num(1)) {
		t.Errorf("= inside child leaked into root: got %v, want 1", got)
	}
}

func TestEnvDefWalksToRoot(t *testing.T) {
	t.Parallel()
	root := lisp.NewEnv(nil)
	child := lisp.NewEnv(root)
	child.Def("x", lisp.Num(5))

	if got := root.Get("x"); !got.Equal(lisp.Num(5)) {
		t.Errorf("def inside child did not reach root: got %v", got)
	}
}

func TestEnvCopyIndependence(t *testing.T) {
	t.Parallel()
	env := lisp.NewEnv(nil)
	env.Put("x", lisp.MakeQExpr(lisp.Num(1)))
	cp := env.Copy()
	cp.Put("x", lisp.MakeQExpr(lisp.Num(2)))

	if got := env.Get("x"); !got.Equal(lisp.MakeQExpr(lisp.Num(1))) {
		t.Errorf("mutating the copy affected the original: %v", got)
	}
}
