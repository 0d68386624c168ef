package luadoc

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func testLib() *Lib {
	return &Lib{
		Name:        "greet",
		Description: "Greetings.",
		Vars: []*Var{
			{
				Name:  "version",
				Value: lua.LString("1"),
				Type:  String,
			},
		},
		Funcs: []*Func{
			{
				Name:        "hello",
				Description: "Says hello.",
				Value: func(L *lua.LState) int {
					L.Push(lua.LString("hello " + L.CheckString(1)))
					return 1
				},
				Params: []*Param{
					{Name: "name", Type: String, Description: "Who to greet."},
					{Name: "loud", Type: Boolean, Optional: true},
				},
				Returns: []*Param{
					{Name: "greeting", Type: String},
				},
			},
		},
		Libs: []*Lib{
			{Name: "nested"},
		},
	}
}

func TestLib_Register(t *testing.T) {
	Convey("Given a registered lib", t, func() {
		L := lua.NewState()
		defer L.Close()

		table := testLib().Register(L)

		Convey("Then it should be a global", func() {
			So(L.GetGlobal("greet"), ShouldEqual, table)
		})

		Convey("Then its functions, vars and libs should be set", func() {
			err := L.DoString(`result = greet.hello("world"); version = greet.version; nested = type(greet.nested)`)
			So(err, ShouldBeNil)
			So(L.GetGlobal("result"), ShouldEqual, lua.LString("hello world"))
			So(L.GetGlobal("version"), ShouldEqual, lua.LString("1"))
			So(L.GetGlobal("nested"), ShouldEqual, lua.LString("table"))
		})

		Convey("When it is registered again", func() {
			again := testLib().Register(L)

			Convey("Then the same table should be reused", func() {
				So(again, ShouldEqual, table)
			})
		})
	})
}

func TestLib_LuaDoc(t *testing.T) {
	Convey("When LuaDoc() is called", t, func() {
		doc := testLib().LuaDoc()

		Convey("Then it should contain EmmyLua annotations", func() {
			So(doc, ShouldContainSubstring, "--- Greetings.\ngreet = {}\n")
			So(doc, ShouldContainSubstring, "---@param name string Who to greet.\n")
			So(doc, ShouldContainSubstring, "---@param loud? boolean\n")
			So(doc, ShouldContainSubstring, "---@return string greeting\n")
			So(doc, ShouldContainSubstring, "function greet.hello(name, loud) end\n")
			So(doc, ShouldContainSubstring, `greet.version = "1"`)
			So(doc, ShouldContainSubstring, "greet.nested = {}\n")
		})
	})
}
