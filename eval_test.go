package lisp_test

import (
	"testing"

	"github.com/jamied157/jdlisp"
	"github.com/jamied157/jdlisp/builtin"
)

func newTestEnv() *lisp.Env {
	env := lisp.NewEnv(nil)
	builtin.Register(env, builtin.NewIO(nil, nil, nil))
	return env
}

func TestEvalSelfEvaluating(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	if got := lisp.Eval(env, lisp.Num(42)); !got.Equal(lisp.Num(42)) {
		t.Errorf("Eval(Num) = %v, want 42", got)
	}
}

func TestEvalArithmetic(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	expr := lisp.MakeSExpr(lisp.Sym("+"), lisp.Num(1), lisp.Num(2), lisp.Num(3))
	if got := lisp.Eval(env, expr); !got.Equal(lisp.Num(6)) {
		t.Errorf("(+ 1 2 3) = %v, want 6", got)
	}
}

func TestEvalDecimalPromotion(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	expr := lisp.MakeSExpr(lisp.Sym("+"), lisp.Num(1), lisp.Dec(2.0))
	got := lisp.Eval(env, expr)
	if got.String() != "3.000000" {
		t.Errorf("(+ 1 2.0) = %v, want 3.000000", got)
	}
}

func TestEvalErrorDominance(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	expr := lisp.MakeSExpr(lisp.Sym("+"), lisp.Num(1), lisp.MakeQExpr())
	got := lisp.Eval(env, expr)
	if _, ok := got.(lisp.Err); !ok {
		t.Fatalf("(+ 1 {}) = %v, want Err", got)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	expr := lisp.MakeSExpr(lisp.Sym("/"), lisp.Num(1), lisp.Num(0))
	got := lisp.Eval(env, expr)
	errv, ok := got.(lisp.Err)
	if !ok || errv.Msg != "Division By Zero!" {
		t.Errorf("(/ 1 0) = %v, want Err(Division By Zero!)", got)
	}
}

func TestEvalDefAndLookup(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	lisp.Eval(env, lisp.MakeSExpr(lisp.Sym("def"), lisp.MakeQExpr(lisp.Sym("x")), lisp.Num(10)))
	got := lisp.Eval(env, lisp.MakeSExpr(lisp.Sym("+"), lisp.Sym("x"), lisp.Num(5)))
	if !got.Equal(lisp.Num(15)) {
		t.Errorf("x+5 = %v, want 15", got)
	}
}

func TestEvalFunAndCall(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	lisp.Eval(env, lisp.MakeSExpr(
		lisp.Sym("fun"),
		lisp.MakeQExpr(lisp.Sym("add"), lisp.Sym("x"), lisp.Sym("y")),
		lisp.MakeQExpr(lisp.Sym("+"), lisp.Sym("x"), lisp.Sym("y")),
	))
	got := lisp.Eval(env, lisp.MakeSExpr(lisp.Sym("add"), lisp.Num(3), lisp.Num(4)))
	if !got.Equal(lisp.Num(7)) {
		t.Errorf("(add 3 4) = %v, want 7", got)
	}
}

func TestEvalVariadicCollectsRest(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	lambda := lisp.Eval(env, lisp.MakeSExpr(
		lisp.Sym("\\"),
		lisp.MakeQExpr(lisp.Sym("x"), lisp.Sym("&"), lisp.Sym("xs")),
		lisp.MakeQExpr(lisp.Sym("xs")),
	))
	fn, ok := lambda.(lisp.Fun)
	if !ok {
		t.Fatalf("\\ did not produce a Fun: %v", lambda)
	}
	got := lisp.Call(env, fn, lisp.MakeSExpr(lisp.Num(1), lisp.Num(2), lisp.Num(3), lisp.Num(4)))
	want := lisp.MakeQExpr(lisp.Num(2), lisp.Num(3), lisp.Num(4))
	if !got.Equal(want) {
		t.Errorf("((\\ {x & xs} {xs}) 1 2 3 4) = %v, want %v", got, want)
	}
}

func TestEvalCurryingPartialApplication(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	lambda := lisp.Eval(env, lisp.MakeSExpr(
		lisp.Sym("\\"),
		lisp.MakeQExpr(lisp.Sym("x"), lisp.Sym("y")),
		lisp.MakeQExpr(lisp.Sym("+"), lisp.Sym("x"), lisp.Sym("y")),
	))
	fn := lambda.(lisp.Fun)
	partial := lisp.Call(env, fn, lisp.MakeSExpr(lisp.Num(3)))
	partialFn, ok := partial.(lisp.Fun)
	if !ok {
		t.Fatalf("currying with too few actuals did not return a Fun: %v", partial)
	}
	got := lisp.Call(env, partialFn, lisp.MakeSExpr(lisp.Num(4)))
	if !got.Equal(lisp.Num(7)) {
		t.Errorf("curried call = %v, want 7", got)
	}
}

func TestEvalIfBranches(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	expr := lisp.MakeSExpr(
		lisp.Sym("if"),
		lisp.MakeSExpr(lisp.Sym(">"), lisp.Num(2), lisp.Num(1)),
		lisp.MakeQExpr(lisp.Sym("+"), lisp.Num(10), lisp.Num(20)),
		lisp.MakeQExpr(lisp.Sym("+"), lisp.Num(0), lisp.Num(0)),
	)
	if got := lisp.Eval(env, expr); !got.Equal(lisp.Num(30)) {
		t.Errorf("if-true branch = %v, want 30", got)
	}
}

func TestEvalNestedEval(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	expr := lisp.MakeSExpr(
		lisp.Sym("eval"),
		lisp.MakeSExpr(
			lisp.Sym("head"),
			lisp.MakeQExpr(
				lisp.MakeSExpr(lisp.Sym("+"), lisp.Num(1), lisp.Num(2)),
				lisp.MakeSExpr(lisp.Sym("+"), lisp.Num(10), lisp.Num(20)),
			),
		),
	)
	if got := lisp.Eval(env, expr); !got.Equal(lisp.Num(3)) {
		t.Errorf("(eval (head {(+ 1 2) (+ 10 20)})) = %v, want 3", got)
	}
}

func TestEnvInsulationAcrossCall(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	env.Def("x", lisp.Num(1))
	lisp.Eval(env, lisp.MakeSExpr(
		lisp.Sym("fun"),
		lisp.MakeQExpr(lisp.Sym("setlocal"), lisp.Sym("y")),
		lisp.MakeQExpr(lisp.Sym("="), lisp.MakeQExpr(lisp.Sym("x")), lisp.Num(99)),
	))
	lisp.Eval(env, lisp.MakeSExpr(lisp.Sym("setlocal"), lisp.Num(0)))
	if got := env.Get("x"); !got.Equal(lisp.Num(1)) {
		t.Errorf("local `=` inside a lambda body leaked: x = %v, want 1", got)
	}
}
