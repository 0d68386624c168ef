// Package crypt exposes the host's one-way password hashing primitive.
//
// The algorithm, the salt ("setting") format and its cost parameters belong
// to the platform library. This package only moves strings across the
// boundary and reports failures.
package crypt

import (
	"fmt"
	"strings"
)

// Hasher is the one-way hash primitive, crypt(3) style.
type Hasher interface {
	Crypt(key, salt string) (string, error)
}

// HasherFunc adapts an ordinary function to Hasher.
type HasherFunc func(key, salt string) (string, error)

func (f HasherFunc) Crypt(key, salt string) (string, error) {
	return f(key, salt)
}

// Native returns the platform implementation.
func Native() Hasher {
	return HasherFunc(nativeCrypt)
}

// Crypt hashes key with the given setting using the platform implementation.
func Crypt(key, salt string) (string, error) {
	return nativeCrypt(key, salt)
}

// Error is returned when the primitive rejects a setting.
// Result holds the raw output, that is the failure token,
// or an empty string if the primitive returned NULL.
type Error struct {
	Setting string
	Result  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crypt: setting %q rejected: %s", e.Setting, e.Err)
	}

	return fmt.Sprintf("crypt: setting %q rejected", e.Setting)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsFailure reports whether result is a failure value
// rather than a hash.
func IsFailure(result string) bool {
	return result == "" || strings.HasPrefix(result, "*")
}

// FailureToken returns the token libcrypt produces for a rejected setting.
// It never equals a prefix of the setting, so it can't verify as a hash.
func FailureToken(setting string) string {
	if strings.HasPrefix(setting, "*0") {
		return "*1"
	}

	return "*0"
}

// cString drops everything after the first NUL,
// keys and settings are C strings on the native side.
func cString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}

	return s
}

// Backend names the implementation Native uses.
func Backend() string {
	return backend
}
