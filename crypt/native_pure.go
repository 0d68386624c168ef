//go:build !cgo || !(linux || darwin || freebsd || netbsd || openbsd)

package crypt

import (
	gcrypt "github.com/GehirnInc/crypt"
	_ "github.com/GehirnInc/crypt/apr1_crypt"
	_ "github.com/GehirnInc/crypt/md5_crypt"
	_ "github.com/GehirnInc/crypt/sha256_crypt"
	_ "github.com/GehirnInc/crypt/sha512_crypt"
)

const backend = "go"

// nativeCrypt covers the MD5, APR1, SHA-256 and SHA-512 families on builds
// without cgo or without a system crypt(3). Other settings fail the way libcrypt does.
func nativeCrypt(key, salt string) (string, error) {
	salt = cString(salt)

	if !gcrypt.IsHashSupported(salt) {
		return "", &Error{Setting: salt, Result: FailureToken(salt)}
	}

	result, err := gcrypt.NewFromHash(salt).Generate([]byte(cString(key)), []byte(salt))
	if err != nil {
		return "", &Error{Setting: salt, Result: FailureToken(salt), Err: err}
	}

	return result, nil
}
