package lisp

// Env is an ordered collection of (symbol, value) bindings with a nullable
// parent pointer (§3). Order is insertion order, matching the ordered-list
// invariant the rest of the value model carries.
type Env struct {
	parent   *Env
	names    []Sym
	values   []Value
	quit     bool
	onQuit   func()
}

// NewEnv creates a new, empty environment with the given parent. A nil
// parent marks a root environment.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent}
}

// Parent returns the parent environment, or nil at the root.
func (e *Env) Parent() *Env { return e.parent }

// SetParent rebinds the environment's parent pointer. Used at full lambda
// application, where the lambda's private environment is rebound to the
// caller's environment before the body is evaluated (§4.5 "Return").
func (e *Env) SetParent(parent *Env) { e.parent = parent }

// Root walks parent pointers to the outermost environment (§4.3 env_def).
func (e *Env) Root() *Env {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// indexOf returns the local slot of sym, or -1 if not locally bound.
func (e *Env) indexOf(sym Sym) int {
	for i, n := range e.names {
		if n == sym {
			return i
		}
	}
	return -1
}

// Get returns a copy of the value bound to sym, searching this environment
// and then its ancestors. Returns Err("Unbound Symbol ...") if sym is bound
// nowhere (§4.3 env_get).
func (e *Env) Get(sym Sym) Value {
	for env := e; env != nil; env = env.parent {
		if i := env.indexOf(sym); i >= 0 {
			return env.values[i].Copy()
		}
	}
	return errUnbound(string(sym))
}

// Lookup is like Get but reports whether sym was bound, without producing
// an Err value on failure.
func (e *Env) Lookup(sym Sym) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if i := env.indexOf(sym); i >= 0 {
			return env.values[i].Copy(), true
		}
	}
	return nil, false
}

// Put binds sym to a copy of v in this environment only, replacing any
// existing local binding (§4.3 env_put). This is the semantics behind `=`.
func (e *Env) Put(sym Sym, v Value) {
	cp := v.Copy()
	if i := e.indexOf(sym); i >= 0 {
		e.values[i] = cp
		return
	}
	e.names = append(e.names, sym)
	e.values = append(e.values, cp)
}

// Def walks to the root environment and binds sym there (§4.3 env_def).
// This is the semantics behind `def`.
func (e *Env) Def(sym Sym, v Value) {
	e.Root().Put(sym, v)
}

// Copy returns a fresh environment holding copies of all local bindings;
// the parent pointer is shared, not owned (§4.3 env_copy).
func (e *Env) Copy() *Env {
	cp := &Env{parent: e.parent}
	cp.names = append(cp.names, e.names...)
	cp.values = make([]Value, len(e.values))
	for i, v := range e.values {
		cp.values[i] = v.Copy()
	}
	return cp
}

// Symbols returns the locally bound symbols, in binding order (backs the
// `list_env` builtin, §4.6).
func (e *Env) Symbols() []Sym {
	out := make([]Sym, len(e.names))
	copy(out, e.names)
	return out
}

// Quit reports whether the `exit` builtin has set the quit flag on this
// environment's root (§4.6).
func (e *Env) Quit() bool { return e.Root().quit }

// SetQuit sets the quit flag on the root environment and, the first time
// it is called, runs any registered onQuit hook.
func (e *Env) SetQuit() {
	root := e.Root()
	first := !root.quit
	root.quit = true
	if first && root.onQuit != nil {
		root.onQuit()
	}
}

// OnQuit registers a hook run once when SetQuit is first called on this
// environment's root. The CLI does not call it: it flushes REPL history
// through an onexit hook instead.
func (e *Env) OnQuit(fn func()) { e.Root().onQuit = fn }
