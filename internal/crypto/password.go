package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// defaultPasswordAlphabet is the character set used when the caller does not
// supply one: ASCII letters, digits, and punctuation.
const defaultPasswordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// DefaultPasswordLength is the length of generated passwords when the caller
// does not specify one.
const DefaultPasswordLength = 32

// GeneratePassword returns a random password of the given length drawn from
// the default alphabet using the OS CSPRNG. A non-positive length selects
// [DefaultPasswordLength].
func GeneratePassword(length int) (string, error) {
	return GeneratePasswordFrom(length, "")
}

// GeneratePasswordFrom returns a random password of the given length drawn
// from alphabet. An empty alphabet selects the default letters, digits, and
// punctuation set; a non-positive length selects [DefaultPasswordLength].
func GeneratePasswordFrom(length int, alphabet string) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}
	if alphabet == "" {
		alphabet = defaultPasswordAlphabet
	}

	alphabetLen := big.NewInt(int64(len(alphabet)))
	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		password[i] = alphabet[idx.Int64()]
	}

	return string(password), nil
}
