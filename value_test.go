package lisp_test

import (
	"strings"
	"testing"

	"github.com/jamied157/jdlisp"
)

func TestPrintDispatch(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		v    lisp.Value
		want string
	}{
		{"num", lisp.Num(6), "6"},
		{"dec", lisp.Dec(3), "3.000000"},
		{"bool", lisp.True, "true"},
		{"sym", lisp.Sym("x"), "x"},
		{"str", lisp.Str(`a"b`), `"a\"b"`},
		{"err", lisp.MakeErr("Division By Zero!"), "Error: Division By Zero!"},
		{"ok", lisp.MakeOk(), ""},
		{"sexpr", lisp.MakeSExpr(lisp.Num(1), lisp.Num(2)), "(1 2)"},
		{"qexpr", lisp.MakeQExpr(lisp.Num(2), lisp.Num(3), lisp.Num(4)), "{2 3 4}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var sb strings.Builder
			lisp.Print(&sb, c.v)
			if got := sb.String(); got != c.want {
				t.Errorf("Print() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestBoolIsTruthy(t *testing.T) {
	t.Parallel()
	if lisp.IsTruthy(lisp.False) {
		t.Error("Bool(false) should not be truthy")
	}
	if !lisp.IsTruthy(lisp.Num(0)) {
		t.Error("everything except Bool(false) should be truthy, including Num(0)")
	}
}

func TestFunEqualityExcludesEnv(t *testing.T) {
	t.Parallel()
	formals := lisp.MakeQExpr(lisp.Sym("x"))
	body := lisp.MakeQExpr(lisp.Sym("x"))
	a := lisp.NewLambda(formals, body, lisp.NewEnv(nil))
	b := lisp.NewLambda(formals, body, lisp.NewEnv(nil))
	if !a.Equal(b) {
		t.Error("lambdas with equal formals/body but distinct captured envs should be Equal")
	}
}

func TestFunCopyEqualsOriginal(t *testing.T) {
	t.Parallel()
	formals := lisp.MakeQExpr(lisp.Sym("x"))
	body := lisp.MakeQExpr(lisp.Sym("x"))
	env := lisp.NewEnv(nil)
	env.Put("y", lisp.Num(1))
	f := lisp.NewLambda(formals, body, env)
	cp := f.Copy().(lisp.Fun)
	if !f.Equal(cp) {
		t.Fatalf("copy should equal original")
	}
}
