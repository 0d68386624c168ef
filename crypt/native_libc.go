//go:build cgo && (darwin || freebsd || netbsd || openbsd)

package crypt

/*
#cgo freebsd netbsd LDFLAGS: -lcrypt
#include <stdlib.h>
#include <string.h>
#include <unistd.h>

// crypt() returns a pointer into static storage, the copy has to be made
// before the next call.
static char *wrap_crypt(const char *key, const char *salt) {
	char *result = crypt(key, salt);
	return result == NULL ? NULL : strdup(result);
}
*/
import "C"
import (
	"sync"
	"unsafe"
)

const backend = "libc"

// crypt() keeps its result in static storage and isn't reentrant.
var nativeMu sync.Mutex

func nativeCrypt(key, salt string) (string, error) {
	salt = cString(salt)

	keyInput := C.CString(cString(key))
	defer C.free(unsafe.Pointer(keyInput))

	saltInput := C.CString(salt)
	defer C.free(unsafe.Pointer(saltInput))

	nativeMu.Lock()
	output, err := C.wrap_crypt(keyInput, saltInput)
	nativeMu.Unlock()
	defer C.free(unsafe.Pointer(output))

	if output == nil {
		return "", &Error{Setting: salt, Err: err}
	}

	result := C.GoString(output)
	if IsFailure(result) {
		return "", &Error{Setting: salt, Result: result, Err: err}
	}

	return result, nil
}
