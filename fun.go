package lisp

import (
	"io"
	"reflect"
)

// BuiltinFn is the native-function shape of a Fun: it receives the calling
// environment and the already-evaluated actuals, and returns an owned
// result (§4.5).
type BuiltinFn func(env *Env, args SExpr) Value

// Fun is a first-class function value: either a builtin (name + native Go
// function) or a user lambda (formals, body, and a private captured
// environment). The two shapes are mutually exclusive (§3).
type Fun struct {
	name    string
	builtin BuiltinFn

	formals QExpr
	body    QExpr
	env     *Env
}

// NewBuiltin wraps a native Go function as a builtin Fun.
func NewBuiltin(name string, fn BuiltinFn) Fun {
	return Fun{name: name, builtin: fn}
}

// NewLambda builds a user lambda closing over env. formals must be a
// QExpr of Sym (checked by the `\` builtin before construction).
func NewLambda(formals, body QExpr, env *Env) Fun {
	return Fun{formals: formals, body: body, env: env}
}

// IsBuiltin reports whether f is the native-function shape.
func (f Fun) IsBuiltin() bool { return f.builtin != nil }

// Name returns the builtin's registered name, or "" for a lambda.
func (f Fun) Name() string { return f.name }

// Kind returns KindFun.
func (Fun) Kind() Kind { return KindFun }

// IsAtom returns true: a function is not decomposable.
func (Fun) IsAtom() bool { return true }

// Equal implements the structural-equality rule for functions (§4.6):
// builtins compare by function-pointer identity, lambdas by recursively
// equal formals and body (their captured environments are excluded).
func (f Fun) Equal(other Value) bool {
	o, ok := other.(Fun)
	if !ok {
		return false
	}
	if f.IsBuiltin() != o.IsBuiltin() {
		return false
	}
	if f.IsBuiltin() {
		return reflect.ValueOf(f.builtin).Pointer() == reflect.ValueOf(o.builtin).Pointer()
	}
	return f.formals.Equal(o.formals) && f.body.Equal(o.body)
}

// Copy returns an independent Fun. A builtin is returned unchanged (it
// carries no mutable state); a lambda's formals, body, and captured
// environment are all copied, so currying never mutates a previously
// published closure (§9 design note, resolved in DESIGN.md).
func (f Fun) Copy() Value {
	if f.IsBuiltin() {
		return f
	}
	return Fun{
		formals: f.formals.Copy().(QExpr),
		body:    f.body.Copy().(QExpr),
		env:     f.env.Copy(),
	}
}

// String renders the function's printed form.
func (f Fun) String() string {
	if f.IsBuiltin() {
		return "<builtin>: " + f.name
	}
	return "(\\ " + f.formals.String() + " " + f.body.String() + ")"
}

// Print writes the function's printed form (§4.2).
func (f Fun) Print(w io.Writer) (int, error) { return io.WriteString(w, f.String()) }
