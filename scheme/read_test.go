package scheme

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRead(t *testing.T) {
	Convey("reading single data", t, func() {
		for _, c := range []struct {
			src, expected string
		}{
			{"123", "123"},
			{"-123", "-123"},
			{"  456  ", "456"},
			{"1.5", "1.5"},
			{"abc", "abc"},
			{"'-", "(quote -)"},
			{"'a", "(quote a)"},
			{"'(1 2)", "(quote (1 2))"},
			{"()", "()"},
			{"(1  1)", "(1 1)"},
			{"(a (b c) d)", "(a (b c) d)"},
			{"(a . b)", "(a . b)"},
			{"(a b . c)", "(a b . c)"},
			{"(a . (b c))", "(a b c)"},
			{"#t", "#t"},
			{"(#f #t)", "(#f #t)"},
			{`"asdf"`, `"asdf"`},
			{"; comment\n(x ; inside\n y)", "(x y)"},
		} {
			d, err := Parse(c.src)
			So(err, ShouldBeNil)
			So(S(d), ShouldEqual, c.expected)
		}
	})

	Convey("strings", t, func() {
		d, err := Parse(`"string with \" quote"`)
		So(err, ShouldBeNil)
		So(d, ShouldEqual, String(`string with " quote`))

		d, err = Parse(`"tab\there"`)
		So(err, ShouldBeNil)
		So(d, ShouldEqual, String("tab\there"))

		d, err = Parse("\"two\nlines\"")
		So(err, ShouldBeNil)
		So(d, ShouldEqual, String("two\nlines"))

		_, err = Parse(`"string with \" quote`)
		So(err.Error(), ShouldContainSubstring, "unterminated string")

		_, err = Parse(`"bad \q escape"`)
		So(err.Error(), ShouldContainSubstring, "bad string literal")
	})

	Convey("read errors", t, func() {
		_, err := Parse("")
		So(err, ShouldEqual, ErrEOF)

		_, err = Parse("(1 2")
		So(errors.Is(err, ErrEOF), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "failed to complete list")

		_, err = Parse("((1)")
		So(errors.Is(err, ErrEOF), ShouldBeTrue)

		_, err = Parse("'")
		So(errors.Is(err, ErrEOF), ShouldBeTrue)

		_, err = Parse(")")
		So(err.Error(), ShouldContainSubstring, "unexpected )")

		_, err = Parse("(1 . 2 3)")
		So(err.Error(), ShouldContainSubstring, "more than one object follows .")

		_, err = Parse("(. 1)")
		So(err.Error(), ShouldContainSubstring, "nothing precedes .")

		_, err = Parse("(1 .")
		So(errors.Is(err, ErrEOF), ShouldBeTrue)

		_, err = Parse("1.2.3")
		So(err.Error(), ShouldContainSubstring, "bad number")

		_, err = Parse("#x")
		So(err.Error(), ShouldContainSubstring, "unsupported hash code")
	})

	Convey("ReadAll", t, func() {
		all, err := ReadAll("(define x 1) x 'y ; trailing")
		So(err, ShouldBeNil)
		So(all, ShouldHaveLength, 3)
		So(S(all[0]), ShouldEqual, "(define x 1)")
		So(all[1], ShouldEqual, Symbol("x"))

		all, err = ReadAll("1 (2")
		So(errors.Is(err, ErrEOF), ShouldBeTrue)
		So(all, ShouldHaveLength, 1)
	})
}
