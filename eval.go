package lisp

// Eval reduces v in env (§4.4). Symbols are looked up; S-expressions are
// reduced via EvalSExpr; every other variant is self-evaluating.
func Eval(env *Env, v Value) Value {
	switch t := v.(type) {
	case Sym:
		return env.Get(t)
	case SExpr:
		return EvalSExpr(env, t)
	default:
		return v
	}
}

// EvalSExpr reduces an S-expression (§4.4):
//  1. every element is evaluated left-to-right;
//  2. the first element to evaluate to Err immediately becomes the result;
//  3. an empty list evaluates to itself;
//  4. a single-element list evaluates to that element;
//  5. otherwise the head must be a Fun, applied to the (already evaluated)
//     tail via Call.
func EvalSExpr(env *Env, s SExpr) Value {
	elements := s.Elements()
	evaluated := make([]Value, len(elements))
	for i, el := range elements {
		v := Eval(env, el)
		if err, ok := v.(Err); ok {
			return err
		}
		evaluated[i] = v
	}

	switch len(evaluated) {
	case 0:
		return s
	case 1:
		return evaluated[0]
	}

	head := evaluated[0]
	fn, ok := head.(Fun)
	if !ok {
		return MakeErr("S-Expression starts with incorrect type. Got %s, Expected %s.", head.Kind(), KindFun)
	}
	return Call(env, fn, MakeSExpr(evaluated[1:]...))
}

// Call applies fn to the already-evaluated actuals args in the calling
// environment env (§4.5). Builtins are invoked directly. User lambdas run
// the binding loop: formals are consumed in order, a formal named "&"
// collects every remaining actual into a QExpr, and once every formal is
// bound the body is evaluated in fn's own environment, its parent rebound
// to env. If actuals run out before formals do, Call returns a new lambda
// (currying) whose environment is a copy of fn's — carrying forward every
// binding made by this and every earlier curry step — so that a later
// call completing the application still sees the whole chain of bound
// formals. fn.env itself is never mutated, since every step works against
// a fresh copy; only the returned lambda's copy accumulates bindings.
func Call(env *Env, fn Fun, args SExpr) Value {
	if fn.IsBuiltin() {
		return fn.builtin(env, args)
	}

	formals := fn.formals.Elements()
	actuals := args.Elements()
	totalActuals, totalFormals := len(actuals), len(formals)

	workEnv := fn.env.Copy()

	fi, ai := 0, 0
	for ai < len(actuals) {
		if fi >= len(formals) {
			return MakeErr("Function passed too many arguments. Got %d, Expected %d.", totalActuals, totalFormals)
		}
		sym, _ := formals[fi].(Sym)
		fi++
		if sym == symVariadic {
			if fi != len(formals)-1 {
				return errVariadicFormat()
			}
			ns, _ := formals[fi].(Sym)
			fi++
			workEnv.Put(ns, MakeQExpr(actuals[ai:]...))
			ai = len(actuals)
			break
		}
		workEnv.Put(sym, actuals[ai])
		ai++
	}

	if fi < len(formals) {
		if sym, _ := formals[fi].(Sym); sym == symVariadic {
			if fi != len(formals)-2 {
				return errVariadicFormat()
			}
			ns, _ := formals[fi+1].(Sym)
			workEnv.Put(ns, MakeQExpr())
			fi += 2
		}
	}

	remaining := formals[fi:]
	if len(remaining) == 0 {
		workEnv.SetParent(env)
		body := fn.body.Copy().(QExpr)
		return Eval(workEnv, sexprOf(body.Pairs()))
	}
	return Fun{formals: MakeQExpr(remaining...), body: fn.body.Copy().(QExpr), env: workEnv}
}

func errVariadicFormat() Err {
	return MakeErr("Function format invalid. symbol '&' not followed by single symbol.")
}
