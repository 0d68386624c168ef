package crypt

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCrypt(t *testing.T) {
	Convey("Given a SHA-512 setting", t, func() {
		const setting = "$6$saltstring"

		Convey("When Crypt() is called", func() {
			result, err := Crypt("Hello world!", setting)

			Convey("Then it should return the reference hash", func() {
				So(err, ShouldBeNil)
				So(result, ShouldEqual, "$6$saltstring$svn8UoSVapNtMuq1ukKS4tPQd8iKwSMHWjl/O817G3uBnIFNjnQJuesI68u4OTLiBFdcbYEdFCoEOfaS35inz1")
			})
		})

		Convey("When Crypt() is called twice with the same input", func() {
			first, err := Crypt("hello", setting)
			So(err, ShouldBeNil)

			second, err := Crypt("hello", setting)
			So(err, ShouldBeNil)

			Convey("Then both results should be equal", func() {
				So(second, ShouldEqual, first)
			})
		})

		Convey("When the stored hash is passed as the setting", func() {
			stored, err := Crypt("hello", setting)
			So(err, ShouldBeNil)

			again, err := Crypt("hello", stored)

			Convey("Then it should reproduce the stored hash", func() {
				So(err, ShouldBeNil)
				So(again, ShouldEqual, stored)
			})
		})

		Convey("When the setting contains a NUL byte", func() {
			truncated, err := Crypt("hello", setting+"\x00x")
			So(err, ShouldBeNil)

			plain, err := Crypt("hello", setting)
			So(err, ShouldBeNil)

			Convey("Then the bytes after it should be ignored", func() {
				So(truncated, ShouldEqual, plain)
				So(truncated, ShouldNotContainSubstring, "\x00")
			})
		})

		Convey("When the key contains a NUL byte", func() {
			truncated, err := Crypt("hello\x00world", setting)
			So(err, ShouldBeNil)

			plain, err := Crypt("hello", setting)
			So(err, ShouldBeNil)

			Convey("Then the bytes after it should be ignored", func() {
				So(truncated, ShouldEqual, plain)
			})
		})
	})

	Convey("Given a setting the primitive rejects", t, func() {
		const setting = "*"

		Convey("When Crypt() is called", func() {
			result, err := Native().Crypt("hello", setting)

			Convey("Then it should return a crypt error", func() {
				So(result, ShouldBeEmpty)

				var cryptErr *Error
				So(errors.As(err, &cryptErr), ShouldBeTrue)
				So(cryptErr.Setting, ShouldEqual, setting)
				So(IsFailure(cryptErr.Result), ShouldBeTrue)
			})
		})
	})
}

func TestIsFailure(t *testing.T) {
	Convey("IsFailure", t, func() {
		So(IsFailure(""), ShouldBeTrue)
		So(IsFailure("*0"), ShouldBeTrue)
		So(IsFailure("*1"), ShouldBeTrue)
		So(IsFailure("abJnggxhB/yWI"), ShouldBeFalse)
		So(IsFailure("$6$saltstring$abc"), ShouldBeFalse)
	})
}

func TestFailureToken(t *testing.T) {
	Convey("FailureToken should never match the start of the setting", t, func() {
		So(FailureToken("$9$whatever"), ShouldEqual, "*0")
		So(FailureToken("*0"), ShouldEqual, "*1")
		So(FailureToken("*0abc"), ShouldEqual, "*1")
		So(FailureToken("*1"), ShouldEqual, "*0")
	})
}

func TestError(t *testing.T) {
	Convey("Given a crypt error with a cause", t, func() {
		cause := errors.New("invalid argument")
		err := &Error{Setting: "$9$", Result: "*0", Err: cause}

		Convey("Then it should unwrap to the cause", func() {
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"$9$"`)
			So(err.Error(), ShouldContainSubstring, "invalid argument")
		})
	})
}
