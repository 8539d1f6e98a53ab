package scheme

import (
	"errors"
	"fmt"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPrimitives(t *testing.T) {
	Convey("arithmetic", t, func() {
		env := Setup()
		var a float64 = 30
		var b float64 = 40
		So(run(fmt.Sprintf("(* %v %v)", a, b), env), ShouldEqual, Number(a*b))
		So(run(fmt.Sprintf("(/ %v %v)", a, b), env), ShouldEqual, Number(a/b))
		So(run(fmt.Sprintf("(+ %v %v)", a, b), env), ShouldEqual, Number(a+b))
		So(run(fmt.Sprintf("(- %v %v)", a, b), env), ShouldEqual, Number(a-b))
		So(run("(+)", env), ShouldEqual, Number(0))
		So(run("(*)", env), ShouldEqual, Number(1))
		So(run("(- 5)", env), ShouldEqual, Number(-5))
		So(run("(/ 2)", env), ShouldEqual, Number(0.5))
		So(run("(- 10 1 2 3)", env), ShouldEqual, Number(4))
		So(run("(* pi 2)", env), ShouldEqual, Number(math.Pi*2))

		fails("(- 'atom 1)", env, ErrWrongType)
		fails("(+ 1 \"2\")", env, ErrWrongType)
	})

	Convey("numeric compare", t, func() {
		env := Setup()
		var a float64 = -10.1
		var b float64 = 40.123
		var c float64 = 70
		So(run(fmt.Sprintf("(< %v %v)", a, b), env), ShouldEqual, Boolean(a < b))
		So(run(fmt.Sprintf("(> %v %v)", a, b), env), ShouldEqual, Boolean(a > b))
		So(run(fmt.Sprintf("(< %v %v %v)", a, b, c), env), ShouldEqual, T)
		So(run(fmt.Sprintf("(< %v %v %v)", a, c, b), env), ShouldEqual, False)
		So(run(fmt.Sprintf("(<= %v %v %v)", a, b, b), env), ShouldEqual, T)
		So(run(fmt.Sprintf("(>= %v %v %v)", b, b, a), env), ShouldEqual, T)
		So(run(fmt.Sprintf("(>= %v %v %v)", a, b, b), env), ShouldEqual, False)
		So(run(fmt.Sprintf("(= %v %v %v)", a, a, a), env), ShouldEqual, T)
		So(run(fmt.Sprintf("(= %v %v %v)", a, b, b), env), ShouldEqual, False)

		fails("(< 1 'atom)", env, ErrWrongType)
		fails("(=)", env, ErrArityMismatch)
	})

	Convey("predicates", t, func() {
		env := Setup()
		So(run("(number? 1)", env), ShouldEqual, T)
		So(run("(number? '(1))", env), ShouldEqual, False)
		So(run(`(number? "1")`, env), ShouldEqual, False)
		So(run("(symbol? 'a)", env), ShouldEqual, T)
		So(run(`(string? "a")`, env), ShouldEqual, T)
		So(run("(boolean? #f)", env), ShouldEqual, T)
		So(run("(procedure? car)", env), ShouldEqual, T)
		So(run("(procedure? (lambda () 1))", env), ShouldEqual, T)
		So(run("(procedure? 'car)", env), ShouldEqual, False)
		So(run("(null? '())", env), ShouldEqual, T)
		So(run("(null? '(1))", env), ShouldEqual, False)
		So(run("(pair? '(1))", env), ShouldEqual, T)
		So(run("(pair? '())", env), ShouldEqual, False)
		So(run("(not #f)", env), ShouldEqual, T)
		So(run("(not 0)", env), ShouldEqual, False)

		fails("(null?)", env, ErrArityMismatch)
	})

	Convey("equality", t, func() {
		env := Setup()
		So(run("(equal? 1 1)", env), ShouldEqual, T)
		So(run("(equal? '(1 (2)) '(1 (2)))", env), ShouldEqual, T)
		So(run("(equal? '(1 2) '(1 3))", env), ShouldEqual, False)
		So(run("(eq? 'a 'a)", env), ShouldEqual, T)
		So(run("(eq? '(1) '(1))", env), ShouldEqual, False)
		So(run("(let ((l '(1))) (eq? l l))", env), ShouldEqual, T)
		So(run("(eq? car car)", env), ShouldEqual, T)
	})

	Convey("lists", t, func() {
		env := Setup()
		So(S(run("(cons 1 2)", env)), ShouldEqual, "(1 . 2)")
		So(S(run("(cons 1 '(2 3))", env)), ShouldEqual, "(1 2 3)")
		So(S(run("(car (cons 1 '(2 3)))", env)), ShouldEqual, "1")
		So(S(run("(cdr (cons 1 '(2 3)))", env)), ShouldEqual, "(2 3)")
		So(S(run("(cdr (cdr (cons 1 '(2 3))))", env)), ShouldEqual, "(3)")
		So(S(run("(cdr (cdr (cdr (cons 1 '(2 3)))))", env)), ShouldEqual, "()")
		So(S(run("(list 1 (+ 1 1) 'c)", env)), ShouldEqual, "(1 2 c)")
		So(run("(list)", env), ShouldEqual, Empty)
		So(run("(length '(1 2 3))", env), ShouldEqual, Number(3))

		err := fails("(car '())", env, ErrWrongType)
		So(err.Error(), ShouldContainSubstring, "car: ")
		fails("(cdr 5)", env, ErrWrongType)
		fails("(length '(1 . 2))", env, ErrWrongType)
	})

	Convey("apply", t, func() {
		env := Setup()
		So(run("(apply + '(1 2 3))", env), ShouldEqual, Number(6))
		So(run("(apply + 1 2 '(3))", env), ShouldEqual, Number(6))
		So(run("(apply (lambda (a b) (- a b)) '(10 4))", env), ShouldEqual, Number(6))

		fails("(apply +)", env, ErrArityMismatch)
		fails("(apply + 1)", env, ErrWrongType)
		fails("(apply 1 '())", env, ErrNotApplicable)
	})

	Convey("printing", t, func() {
		env := Setup()
		car, _ := env.LookupVar("car")
		So(S(car), ShouldEqual, "<native-func car>")
		So(S(env), ShouldStartWith, "<env 0x")
		So(S(Unspecified), ShouldEqual, "#<unspecified>")
		So(S(Number(2.5)), ShouldEqual, "2.5")
		So(S(Number(1e21)), ShouldEqual, "1e+21")

		run("(define (sq x) (* x x))", env)
		So(S(run("sq", env)), ShouldEqual, "<function sq: (* x x)>")
	})

	Convey("apply errors keep their kind", t, func() {
		env := Setup()
		_, err := EvalString("(apply (lambda (a) a) '(1 2))", env)
		So(errors.Is(err, ErrArityMismatch), ShouldBeTrue)
	})
}
