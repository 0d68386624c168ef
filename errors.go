package luacrypt

import "fmt"

type (
	// ScriptError is returned when a script can't be loaded or fails while running.
	ScriptError struct {
		Script string
		error
	}

	InfoError struct {
		error
	}
)

func (s ScriptError) Error() string {
	return fmt.Sprintf("script %q: %s", s.Script, s.error)
}

func (s ScriptError) Unwrap() error {
	return s.error
}

func (i InfoError) Error() string {
	return fmt.Sprintf("info: %s", i.error)
}

func (i InfoError) Unwrap() error {
	return i.error
}
