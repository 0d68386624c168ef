package luadoc

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Lib describes a lua module: its functions, variables and nested modules.
// The same description is used to build the module table and its docs.
type Lib struct {
	Name        string
	Description string
	Funcs       []*Func
	Vars        []*Var
	Libs        []*Lib
}

func (l *Lib) funcs() map[string]lua.LGFunction {
	return lo.Associate(l.Funcs, func(f *Func) (string, lua.LGFunction) {
		return f.Name, f.Value
	})
}

func (l *Lib) fill(L *lua.LState, table *lua.LTable) {
	L.SetFuncs(table, l.funcs())

	for _, v := range l.Vars {
		table.RawSetString(v.Name, v.Value)
	}

	for _, lib := range l.Libs {
		table.RawSetString(lib.Name, lib.table(L))
	}
}

func (l *Lib) table(L *lua.LState) *lua.LTable {
	table := L.NewTable()
	l.fill(L, table)
	return table
}

// Loader returns a function suitable for LState.PreloadModule.
func (l *Lib) Loader() lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(l.table(L))
		return 1
	}
}

// Register installs the lib as a global module and marks it as loaded,
// so both the global and require(name) refer to the same table.
// An existing module table is reused.
func (l *Lib) Register(L *lua.LState) *lua.LTable {
	module := L.RegisterModule(l.Name, l.funcs()).(*lua.LTable)

	for _, v := range l.Vars {
		module.RawSetString(v.Name, v.Value)
	}

	for _, lib := range l.Libs {
		module.RawSetString(lib.Name, lib.table(L))
	}

	return module
}

// LuaDoc renders EmmyLua annotations for the lib and everything below it.
func (l *Lib) LuaDoc() string {
	var sb strings.Builder
	l.writeDoc(&sb, l.Name)
	return sb.String()
}

func (l *Lib) writeDoc(sb *strings.Builder, path string) {
	writeDescription(sb, l.Description)
	sb.WriteString(fmt.Sprintf("%s = {}\n\n", path))

	for _, v := range l.Vars {
		writeDescription(sb, v.Description)
		sb.WriteString(fmt.Sprintf("---@type %s\n", v.Type))
		sb.WriteString(fmt.Sprintf("%s.%s = %s\n\n", path, v.Name, literal(v.Value)))
	}

	for _, f := range l.Funcs {
		writeDescription(sb, f.Description)

		for _, p := range f.Params {
			name := p.Name
			if p.Optional {
				name += "?"
			}

			sb.WriteString(strings.TrimSpace(fmt.Sprintf("---@param %s %s %s", name, p.Type, p.Description)))
			sb.WriteString("\n")
		}

		for _, r := range f.Returns {
			sb.WriteString(strings.TrimSpace(fmt.Sprintf("---@return %s %s %s", r.Type, r.Name, r.Description)))
			sb.WriteString("\n")
		}

		params := lo.Map(f.Params, func(p *Param, _ int) string {
			return p.Name
		})

		sb.WriteString(fmt.Sprintf("function %s.%s(%s) end\n\n", path, f.Name, strings.Join(params, ", ")))
	}

	for _, lib := range l.Libs {
		lib.writeDoc(sb, path+"."+lib.Name)
	}
}

func writeDescription(sb *strings.Builder, description string) {
	if description == "" {
		return
	}

	for _, line := range strings.Split(description, "\n") {
		sb.WriteString("--- " + line + "\n")
	}
}

func literal(value lua.LValue) string {
	if s, ok := value.(lua.LString); ok {
		return fmt.Sprintf("%q", string(s))
	}

	return value.String()
}
