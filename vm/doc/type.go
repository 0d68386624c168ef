package luadoc

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	String  = "string"
	Boolean = "boolean"
	Nil     = "nil"
)

// Union joins types the way EmmyLua expects, e.g. "string|nil".
func Union(types ...string) string {
	return strings.Join(types, "|")
}

func Enum(members ...string) string {
	quoted := lo.Map(members, func(s string, _ int) string {
		return fmt.Sprintf(`'%s'`, s)
	})

	return strings.Join(quoted, " | ")
}
