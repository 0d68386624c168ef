package vm

import (
	"github.com/mangalorg/luacrypt/vm/lib"
	"github.com/mangalorg/luacrypt/vm/lib/crypt"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

type Options struct {
	Crypt crypt.Options

	// RequireOnly keeps the libs out of the global table,
	// scripts have to require them.
	RequireOnly bool
}

func NewState(options Options) *lua.LState {
	libs := []lo.Tuple2[string, lua.LGFunction]{
		{A: lua.BaseLibName, B: lua.OpenBase},
		{A: lua.TabLibName, B: lua.OpenTable},
		{A: lua.StringLibName, B: lua.OpenString},
		{A: lua.MathLibName, B: lua.OpenMath},
		{A: lua.LoadLibName, B: lua.OpenPackage},
		{A: lua.CoroutineLibName, B: lua.OpenCoroutine},
		{A: lua.ChannelLibName, B: lua.OpenChannel},
	}

	state := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	// io and os are left out, scripts get no file or process access
	for _, injectLib := range libs {
		state.Push(state.NewFunction(injectLib.B))
		state.Push(lua.LString(injectLib.A))
		state.Call(1, 0)
	}

	libOptions := lib.Options{
		Crypt: options.Crypt,
	}

	if options.RequireOnly {
		lib.Preload(state, libOptions)
	} else {
		lib.Open(state, libOptions)
	}

	return state
}
