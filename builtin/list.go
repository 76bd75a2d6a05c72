package builtin

import "github.com/jamied157/jdlisp"

// List implements `list`: retypes the SExpr of actuals to a QExpr (§4.6).
func List(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return lisp.MakeQExpr(args.Elements()...)
}

// Head implements `head`: on a QExpr, keeps only the first element; on a
// Str, keeps only the first character (§4.6).
func Head(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 1 {
		return lisp.ErrArity("head", len(vals), 1)
	}
	switch t := vals[0].(type) {
	case lisp.QExpr:
		if t.Length() == 0 {
			return lisp.MakeErr("Function head passed {}!")
		}
		return lisp.MakeQExpr(t.Elements()[0])
	case lisp.Str:
		s := string(t)
		if s == "" {
			return lisp.MakeErr("Function head passed empty string!")
		}
		r := []rune(s)
		return lisp.Str(string(r[0]))
	default:
		return lisp.ErrTypeArg("head", 1, t.Kind(), lisp.KindQExpr)
	}
}

// Tail implements `tail`: on a QExpr, drops the first element; on a Str,
// keeps only the last character (§4.6 — the Str overload is deliberately
// asymmetric with Head's list overload).
func Tail(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 1 {
		return lisp.ErrArity("tail", len(vals), 1)
	}
	switch t := vals[0].(type) {
	case lisp.QExpr:
		if t.Length() == 0 {
			return lisp.MakeErr("Function tail passed {}!")
		}
		return lisp.MakeQExpr(t.Elements()[1:]...)
	case lisp.Str:
		s := []rune(string(t))
		if len(s) == 0 {
			return lisp.MakeErr("Function tail passed empty string!")
		}
		return lisp.Str(string(s[len(s)-1]))
	default:
		return lisp.ErrTypeArg("tail", 1, t.Kind(), lisp.KindQExpr)
	}
}

// Init implements `init`: all elements but the last.
func Init(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 1 {
		return lisp.ErrArity("init", len(vals), 1)
	}
	q, ok := vals[0].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("init", 1, vals[0].Kind(), lisp.KindQExpr)
	}
	if q.Length() == 0 {
		return lisp.MakeErr("Function init passed {}!")
	}
	elems := q.Elements()
	return lisp.MakeQExpr(elems[:len(elems)-1]...)
}

// Cons implements `cons`: prepends a value to a QExpr.
func Cons(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 2 {
		return lisp.ErrArity("cons", len(vals), 2)
	}
	q, ok := vals[1].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("cons", 2, vals[1].Kind(), lisp.KindQExpr)
	}
	return lisp.MakeQExpr(append([]lisp.Value{vals[0]}, q.Elements()...)...)
}

// Len implements `len`: length of a QExpr.
func Len(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 1 {
		return lisp.ErrArity("len", len(vals), 1)
	}
	q, ok := vals[0].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("len", 1, vals[0].Kind(), lisp.KindQExpr)
	}
	return lisp.Num(q.Length())
}

// Join implements `join`: concatenates QExprs, or concatenates Strs.
func Join(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) == 0 {
		return lisp.ErrArity("join", 0, 1)
	}
	if s, ok := vals[0].(lisp.Str); ok {
		out := string(s)
		for i, v := range vals[1:] {
			s2, ok := v.(lisp.Str)
			if !ok {
				return lisp.ErrTypeArg("join", i+2, v.Kind(), lisp.KindStr)
			}
			out += string(s2)
		}
		return lisp.Str(out)
	}
	var elems []lisp.Value
	for i, v := range vals {
		q, ok := v.(lisp.QExpr)
		if !ok {
			return lisp.ErrTypeArg("join", i+1, v.Kind(), lisp.KindQExpr)
		}
		elems = append(elems, q.Elements()...)
	}
	return lisp.MakeQExpr(elems...)
}

// Eval implements `eval`: retypes a QExpr to SExpr and evaluates it.
func Eval(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 1 {
		return lisp.ErrArity("eval", len(vals), 1)
	}
	q, ok := vals[0].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("eval", 1, vals[0].Kind(), lisp.KindQExpr)
	}
	return lisp.Eval(env, lisp.MakeSExpr(q.Elements()...))
}
