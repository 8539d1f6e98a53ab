package scheme

import (
	"fmt"
	"sort"
)

type Binding map[Symbol]Data

// Env is one frame of the lexical scope chain. Frames are shared: every
// closure created inside a frame keeps it alive through its Env field.
type Env struct {
	vars  Binding
	outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{
		vars:  make(Binding),
		outer: outer,
	}
}

func (env *Env) String() string {
	return fmt.Sprintf("<env %p>", env)
}

func (env *Env) Outer() *Env {
	return env.outer
}

func (env *Env) BindName(name string, d Data) {
	env.vars[Symbol(name)] = d
}

// DefineVar binds sym in this frame, replacing any existing binding.
func (env *Env) DefineVar(sym Symbol, d Data) {
	env.vars[sym] = d
}

// Find returns the nearest frame binding sym, or nil.
func (env *Env) Find(sym Symbol) *Env {
	for e := env; e != nil; e = e.outer {
		if _, ok := e.vars[sym]; ok {
			return e
		}
	}
	return nil
}

func (env *Env) LookupVar(sym Symbol) (Data, error) {
	e := env.Find(sym)
	if e == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnboundVariable, sym)
	}
	return e.vars[sym], nil
}

// SetVar overwrites the nearest existing binding of sym.
func (env *Env) SetVar(sym Symbol, d Data) error {
	e := env.Find(sym)
	if e == nil {
		return fmt.Errorf("%w: set! of %v", ErrUnboundVariable, sym)
	}
	e.vars[sym] = d
	return nil
}

// Extend returns a child frame binding params to args positionally.
func (env *Env) Extend(params []Symbol, args []Data) (*Env, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("%w: expected %d arguments, received %d",
			ErrArityMismatch, len(params), len(args))
	}
	child := NewEnv(env)
	for i, p := range params {
		child.vars[p] = args[i]
	}
	return child, nil
}

// Names lists the symbols bound in this frame, sorted.
func (env *Env) Names() []Symbol {
	names := make([]Symbol, 0, len(env.vars))
	for k := range env.vars {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
