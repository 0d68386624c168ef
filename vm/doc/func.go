package luadoc

import lua "github.com/yuin/gopher-lua"

type Param struct {
	Name        string
	Description string
	Type        string
	Optional    bool
}

type Func struct {
	Name        string
	Description string
	Value       lua.LGFunction
	Params      []*Param
	Returns     []*Param
}
