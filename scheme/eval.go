package scheme

import (
	"fmt"

	"github.com/rread/scheval/lexer"
	"github.com/rread/scheval/log"
)

var (
	_quote  = Symbol("quote")
	_define = Symbol("define")
	_set    = Symbol("set!")
	_if     = Symbol("if")
	_begin  = Symbol("begin")
	_cond   = Symbol("cond")
	_else   = Symbol("else")
	_and    = Symbol("and")
	_or     = Symbol("or")
	_let    = Symbol("let")
	_lambda = Symbol("lambda")
	_ok     = Symbol("ok")
)

// Special-form keywords are recognised by the head of a list and may not be
// rebound.
var keywords = map[Symbol]bool{
	_quote:  true,
	_define: true,
	_set:    true,
	_if:     true,
	_begin:  true,
	_cond:   true,
	_and:    true,
	_or:     true,
	_let:    true,
	_lambda: true,
}

// IsKeyword reports whether sym names a special form.
func IsKeyword(sym Symbol) bool {
	return keywords[sym]
}

// Eval evaluates expr in env. Expressions in tail position are handled by
// the loop rather than by recursion.
func Eval(expr Data, env *Env) (Data, error) {
	for {
		log.Debugf("eval: %T: %v", expr, expr)
		switch e := expr.(type) {
		case Number, String, Boolean, Null, unspecified:
			return e, nil
		case Symbol:
			return env.LookupVar(e)
		case Procedure:
			return e, nil
		case *Pair:
			if sym, ok := e.car.(Symbol); ok && keywords[sym] {
				args, err := ListToSlice(e.cdr)
				if err != nil {
					return nil, malformed(e, "improper form")
				}
				switch sym {
				case _quote:
					if len(args) != 1 {
						return nil, malformed(e, "quote takes one datum")
					}
					return copyDatum(args[0]), nil
				case _define:
					return definition(e, args, env)
				case _set:
					return assignment(e, args, env)
				case _if:
					if len(args) != 2 && len(args) != 3 {
						return nil, malformed(e, "if takes a test, a consequent and an optional alternative")
					}
					test, err := Eval(args[0], env)
					if err != nil {
						return nil, err
					}
					if IsTrue(test) {
						expr = args[1]
					} else if len(args) == 3 {
						expr = args[2]
					} else {
						return Unspecified, nil
					}
				case _begin:
					if len(args) == 0 {
						return Unspecified, nil
					}
					if expr, err = evalBody(args, env); err != nil {
						return nil, err
					}
				case _cond:
					body, val, err := cond(e, args, env)
					if err != nil {
						return nil, err
					}
					if body == nil {
						return val, nil
					}
					if expr, err = evalBody(body, env); err != nil {
						return nil, err
					}
				case _and:
					if len(args) == 0 {
						return T, nil
					}
					for _, a := range args[:len(args)-1] {
						v, err := Eval(a, env)
						if err != nil {
							return nil, err
						}
						if !IsTrue(v) {
							return v, nil
						}
					}
					expr = args[len(args)-1]
				case _or:
					if len(args) == 0 {
						return False, nil
					}
					for _, a := range args[:len(args)-1] {
						v, err := Eval(a, env)
						if err != nil {
							return nil, err
						}
						if IsTrue(v) {
							return v, nil
						}
					}
					expr = args[len(args)-1]
				case _let:
					letEnv, body, err := let(e, args, env)
					if err != nil {
						return nil, err
					}
					env = letEnv
					if expr, err = evalBody(body, env); err != nil {
						return nil, err
					}
				case _lambda:
					if len(args) < 2 {
						return nil, malformed(e, "lambda needs parameters and a body")
					}
					l, err := makeLambda(e, args[0], args[1:], env)
					if err != nil {
						return nil, err
					}
					return l, nil
				}
				continue
			}

			log.Debugf("procedure call %v", e)
			proc, err := Eval(e.car, env)
			if err != nil {
				return nil, err
			}
			args, err := evalArgs(e.cdr, env)
			if err != nil {
				return nil, err
			}
			switch f := proc.(type) {
			case *Primitive:
				return callPrimitive(f, args)
			case *Compound:
				env, err = f.Env.Extend(f.Params, args)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", procedureName(f), err)
				}
				if expr, err = evalBody(f.Body, env); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: %v in %v", ErrNotApplicable, Repr(proc), e)
			}
		default:
			return nil, fmt.Errorf("unparsable expression: %v", Repr(expr))
		}
	}
}

// Apply calls proc with already-evaluated arguments.
func Apply(proc Data, args []Data) (Data, error) {
	switch f := proc.(type) {
	case *Primitive:
		return callPrimitive(f, args)
	case *Compound:
		env, err := f.Env.Extend(f.Params, args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", procedureName(f), err)
		}
		last, err := evalBody(f.Body, env)
		if err != nil {
			return nil, err
		}
		return Eval(last, env)
	}
	return nil, fmt.Errorf("%w: %v", ErrNotApplicable, Repr(proc))
}

func callPrimitive(p *Primitive, args []Data) (Data, error) {
	log.Debugf("apply %s to %v", p.Name, args)
	v, err := p.Fn(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	return v, nil
}

// evalBody evaluates all but the last expression of body and returns the
// last one unevaluated, so the caller can treat it as a tail expression.
func evalBody(body []Data, env *Env) (Data, error) {
	for _, e := range body[:len(body)-1] {
		if _, err := Eval(e, env); err != nil {
			return nil, err
		}
	}
	return body[len(body)-1], nil
}

func evalArgs(list Data, env *Env) ([]Data, error) {
	exprs, err := ListToSlice(list)
	if err != nil {
		return nil, fmt.Errorf("bad argument list: %v", err)
	}
	args := make([]Data, len(exprs))
	for i, a := range exprs {
		if args[i], err = Eval(a, env); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func malformed(form Data, why string) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, why, Repr(form))
}

func bindable(form Data, d Data) (Symbol, error) {
	sym, err := getSymbol(d)
	if err != nil {
		return "", malformed(form, err.Error())
	}
	if keywords[sym] {
		return "", malformed(form, fmt.Sprintf("cannot rebind keyword %v", sym))
	}
	return sym, nil
}

// definition handles (define name expr) and (define (name p...) body...),
// rewriting the latter into (define name (lambda (p...) body...)).
func definition(form *Pair, args []Data, env *Env) (Data, error) {
	if len(args) == 0 {
		return nil, malformed(form, "define needs a name")
	}
	if target, ok := args[0].(*Pair); ok {
		if len(args) < 2 {
			return nil, malformed(form, "define needs a body")
		}
		lambda := Cons(_lambda, Cons(target.cdr, SliceToList(args[1:], Empty)))
		return definition(form, []Data{target.car, lambda}, env)
	}
	name, err := bindable(form, args[0])
	if err != nil {
		return nil, err
	}
	if len(args) != 2 {
		return nil, malformed(form, "define takes a name and one expression")
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if c, ok := value.(*Compound); ok && c.Name == "" {
		c.Name = name
	}
	env.DefineVar(name, value)
	// Return value of define is unspecified
	return _ok, nil
}

func assignment(form *Pair, args []Data, env *Env) (Data, error) {
	if len(args) != 2 {
		return nil, malformed(form, "set! takes a name and one expression")
	}
	name, err := bindable(form, args[0])
	if err != nil {
		return nil, err
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.SetVar(name, value); err != nil {
		return nil, err
	}
	return _ok, nil
}

func makeLambda(form Data, params Data, body []Data, env *Env) (*Compound, error) {
	list, err := ListToSlice(params)
	if err != nil {
		return nil, malformed(form, "bad params")
	}
	l := &Compound{Body: body, Env: env}
	seen := make(map[Symbol]bool, len(list))
	for _, p := range list {
		sym, err := bindable(form, p)
		if err != nil {
			return nil, err
		}
		if seen[sym] {
			return nil, malformed(form, fmt.Sprintf("duplicate parameter %v", sym))
		}
		seen[sym] = true
		l.Params = append(l.Params, sym)
	}
	return l, nil
}

// cond picks the first clause whose test is true. It returns that clause's
// body, or a nil body and the value of the whole form.
func cond(form *Pair, clauses []Data, env *Env) ([]Data, Data, error) {
	for i, c := range clauses {
		parts, err := ListToSlice(c)
		if err != nil || len(parts) == 0 {
			return nil, nil, malformed(form, "bad clause")
		}
		if s, ok := parts[0].(Symbol); ok && s == _else {
			if i != len(clauses)-1 {
				return nil, nil, malformed(form, "else must be the last clause")
			}
			if len(parts) == 1 {
				return nil, nil, malformed(form, "empty else clause")
			}
			return parts[1:], nil, nil
		}
		test, err := Eval(parts[0], env)
		if err != nil {
			return nil, nil, err
		}
		if IsTrue(test) {
			if len(parts) == 1 {
				return nil, test, nil
			}
			return parts[1:], nil, nil
		}
	}
	return nil, Unspecified, nil
}

// let evaluates every init in env, then binds them all at once in a single
// child frame. Inits cannot see each other.
func let(form *Pair, args []Data, env *Env) (*Env, []Data, error) {
	if len(args) < 2 {
		return nil, nil, malformed(form, "let needs bindings and a body")
	}
	bindings, err := ListToSlice(args[0])
	if err != nil {
		return nil, nil, malformed(form, "bad bindings")
	}
	names := make([]Symbol, 0, len(bindings))
	values := make([]Data, 0, len(bindings))
	seen := make(map[Symbol]bool, len(bindings))
	for _, b := range bindings {
		parts, err := ListToSlice(b)
		if err != nil || len(parts) != 2 {
			return nil, nil, malformed(form, fmt.Sprintf("bad binding %v", Repr(b)))
		}
		name, err := bindable(form, parts[0])
		if err != nil {
			return nil, nil, err
		}
		if seen[name] {
			return nil, nil, malformed(form, fmt.Sprintf("duplicate binding %v", name))
		}
		seen[name] = true
		v, err := Eval(parts[1], env)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		values = append(values, v)
	}
	child, err := env.Extend(names, values)
	if err != nil {
		return nil, nil, err
	}
	return child, args[1:], nil
}

// EvalString reads and evaluates each expression in src in turn and returns
// the value of the last one.
func EvalString(src string, env *Env) (Data, error) {
	l := lexer.New("scheme", src)
	var result Data = Unspecified
	for {
		expr, err := Read(l)
		if err == ErrEOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		if result, err = Eval(expr, env); err != nil {
			return nil, err
		}
	}
}
