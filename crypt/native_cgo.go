//go:build cgo && linux

package crypt

/*
#cgo LDFLAGS: -lcrypt
#define _GNU_SOURCE
#include <crypt.h>
#include <stdlib.h>
#include <string.h>

// crypt_r() writes its result into the crypt_data buffer. Copy it to a
// separate heap string so the caller only has one pointer to free.
static char *wrap_crypt_r(const char *phrase, const char *setting) {
	struct crypt_data *data = calloc(1, sizeof(struct crypt_data));
	if (data == NULL) {
		return NULL;
	}

	char *result = crypt_r(phrase, setting, data);
	char *output = result == NULL ? NULL : strdup(result);
	free(data);
	return output;
}
*/
import "C"
import "unsafe"

const backend = "libcrypt"

// nativeCrypt wraps crypt_r(), which is reentrant, so concurrent callers
// need no lock.
func nativeCrypt(key, salt string) (string, error) {
	salt = cString(salt)

	phraseInput := C.CString(cString(key))
	defer C.free(unsafe.Pointer(phraseInput))

	settingInput := C.CString(salt)
	defer C.free(unsafe.Pointer(settingInput))

	output, err := C.wrap_crypt_r(phraseInput, settingInput)
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
