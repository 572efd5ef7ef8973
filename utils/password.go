package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPass derives an argon2id hash and returns it as "salt.hash", both
// base64 encoded.
func HashPass(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("unable to create salt")
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	saltBase64 := base64.StdEncoding.EncodeToString(salt)
	hashBase64 := base64.StdEncoding.EncodeToString(hash)
	return fmt.Sprintf("%s.%s", saltBase64, hashBase64), nil
}

// ComparePass re-derives the hash with the stored salt and compares in
// constant time. A nil return means the password matches.
func ComparePass(password, hashPassword string) error {
	parts := strings.Split(hashPassword, ".")
	if len(parts) != 2 {
		return errors.New("invalid hash format")
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return errors.New("invalid hash format")
	}
	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return errors.New("invalid hash format")
	}

	derived := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	if len(hash) != len(derived) || subtle.ConstantTimeCompare(hash, derived) != 1 {
		return errors.New("incorrect password")
	}
	return nil
}
