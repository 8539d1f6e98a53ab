package scheme

import (
	"fmt"
	"math"
)

func EmptyEnv() *Env {
	return NewEnv(nil)
}

// Setup returns a fresh root environment holding the primitive procedures.
// Each call is independent of every other.
func Setup() *Env {
	env := EmptyEnv()
	bind := func(name string, fn PrimitiveFunc) {
		env.BindName(name, &Primitive{Name: name, Fn: fn})
	}

	bind("+", ApplyNumeric(0, func(x, y Number) Number {
		return x + y
	}))
	bind("*", ApplyNumeric(1, func(x, y Number) Number {
		return x * y
	}))
	bind("-", ApplyNumeric(0, func(x, y Number) Number {
		return x - y
	}))
	bind("/", ApplyNumeric(1, func(x, y Number) Number {
		return x / y
	}))
	bind("=", ApplyNumericBool(func(x, y Number) bool {
		return x == y
	}))
	bind("<", ApplyNumericBool(func(x, y Number) bool {
		return x < y
	}))
	bind(">", ApplyNumericBool(func(x, y Number) bool {
		return x > y
	}))
	bind("<=", ApplyNumericBool(func(x, y Number) bool {
		return x <= y
	}))
	bind(">=", ApplyNumericBool(func(x, y Number) bool {
		return x >= y
	}))

	bind("not", Apply1(func(a Data) (Data, error) {
		return Boolean(!IsTrue(a)), nil
	}))
	bind("number?", typePredicate(func(a Data) bool { _, ok := a.(Number); return ok }))
	bind("symbol?", typePredicate(func(a Data) bool { _, ok := a.(Symbol); return ok }))
	bind("string?", typePredicate(func(a Data) bool { _, ok := a.(String); return ok }))
	bind("boolean?", typePredicate(func(a Data) bool { _, ok := a.(Boolean); return ok }))
	bind("procedure?", typePredicate(func(a Data) bool { _, ok := a.(Procedure); return ok }))
	bind("null?", typePredicate(nullp))
	bind("pair?", typePredicate(pairp))
	bind("eq?", Apply2(func(a, b Data) (Data, error) {
		return Boolean(Eqv(a, b)), nil
	}))
	bind("equal?", Apply2(func(a, b Data) (Data, error) {
		return Boolean(Equal(a, b)), nil
	}))

	bind("cons", Apply2(func(a, b Data) (Data, error) {
		return Cons(a, b), nil
	}))
	bind("car", Apply1(func(a Data) (Data, error) {
		p, err := getPair(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrongType, err)
		}
		return p.car, nil
	}))
	bind("cdr", Apply1(func(a Data) (Data, error) {
		p, err := getPair(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrongType, err)
		}
		return p.cdr, nil
	}))
	bind("list", func(args []Data) (Data, error) {
		return List(args...), nil
	})
	bind("length", Apply1(func(a Data) (Data, error) {
		n := Len(a)
		if n < 0 {
			return nil, fmt.Errorf("%w: not a proper list: %v", ErrWrongType, Repr(a))
		}
		return Number(n), nil
	}))
	bind("apply", func(args []Data) (Data, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: expected at least 2 arguments, received %d",
				ErrArityMismatch, len(args))
		}
		rest, err := ListToSlice(args[len(args)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrongType, err)
		}
		spread := append(append([]Data{}, args[1:len(args)-1]...), rest...)
		return Apply(args[0], spread)
	})

	env.BindName("pi", Number(math.Pi))
	return env
}

func getNumber(d Data) (Number, error) {
	n, ok := d.(Number)
	if !ok {
		return 0, fmt.Errorf("%w: not a number: %v", ErrWrongType, Repr(d))
	}
	return n, nil
}

// ApplyNumeric folds f over its arguments. With no arguments it returns
// identity; with one it returns f(identity, x), so (- 5) is -5 and (/ 2) is 0.5.
func ApplyNumeric(identity Number, f func(Number, Number) Number) PrimitiveFunc {
	return func(args []Data) (Data, error) {
		if len(args) == 0 {
			return identity, nil
		}
		v, err := getNumber(args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return f(identity, v), nil
		}
		for _, a := range args[1:] {
			i, err := getNumber(a)
			if err != nil {
				return nil, err
			}
			v = f(v, i)
		}
		return v, nil
	}
}

// ApplyNumericBool checks that f holds for every adjacent pair of arguments.
func ApplyNumericBool(f func(Number, Number) bool) PrimitiveFunc {
	return func(args []Data) (Data, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: expected at least 1 argument", ErrArityMismatch)
		}
		nums := make([]Number, len(args))
		for i, a := range args {
			n, err := getNumber(a)
			if err != nil {
				return nil, err
			}
			nums[i] = n
		}
		for i := 1; i < len(nums); i++ {
			if !f(nums[i-1], nums[i]) {
				return False, nil
			}
		}
		return T, nil
	}
}

func Apply1(f func(Data) (Data, error)) PrimitiveFunc {
	return func(args []Data) (Data, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expected 1 argument, received %d", ErrArityMismatch, len(args))
		}
		return f(args[0])
	}
}

func Apply2(f func(Data, Data) (Data, error)) PrimitiveFunc {
	return func(args []Data) (Data, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: expected 2 arguments, received %d", ErrArityMismatch, len(args))
		}
		return f(args[0], args[1])
	}
}

func typePredicate(test func(Data) bool) PrimitiveFunc {
	return Apply1(func(a Data) (Data, error) {
		return Boolean(test(a)), nil
	})
}
