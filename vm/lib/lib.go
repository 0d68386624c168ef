package lib

import (
	luadoc "github.com/mangalorg/luacrypt/vm/doc"
	"github.com/mangalorg/luacrypt/vm/lib/crypt"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

type Options struct {
	Crypt crypt.Options
}

// Libs returns every lib the vm exposes to scripts.
func Libs(options Options) []*luadoc.Lib {
	return []*luadoc.Lib{
		crypt.Lib(options.Crypt),
	}
}

// Open registers every lib as a global module.
func Open(state *lua.LState, options Options) {
	for _, l := range Libs(options) {
		l.Register(state)
	}
}

// Preload makes every lib available to require without creating globals.
func Preload(state *lua.LState, options Options) {
	for _, t := range lo.Map(Libs(options), func(l *luadoc.Lib, _ int) lo.Tuple2[string, lua.LGFunction] {
		return lo.T2(l.Name, l.Loader())
	}) {
		state.PreloadModule(t.A, t.B)
	}
}

// LuaDoc renders docs of every lib.
func LuaDoc(options Options) string {
	return lo.Reduce(Libs(options), func(doc string, l *luadoc.Lib, _ int) string {
		return doc + l.LuaDoc()
	}, "")
}
