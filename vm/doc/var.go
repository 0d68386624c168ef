package luadoc

import lua "github.com/yuin/gopher-lua"

// Var is a constant exposed as a field of the lib table.
type Var struct {
	Name        string
	Description string
	Value       lua.LValue
	Type        string
}
