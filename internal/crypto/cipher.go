// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/doc-sentry/internal/logger"
)

// encSuffix is appended to file names produced by EncryptFile and stripped
// by DecryptFile.
const encSuffix = ".enc"

// cipherService is the private implementation of [CipherService].
//
// The derived key is computed at most once per instance and cached for
// subsequent calls. The cache is instance-local: rotating a secret uses two
// independent instances and never mutates a cached key.
type cipherService struct {
	keys   KeyService
	secret []byte
	logger *logger.Logger

	once   sync.Once
	key    []byte
	keyErr error
}

// NewCipherService constructs a [CipherService] whose key is derived from
// secret via keys. An empty secret selects the machine-bound fallback —
// see [KeyService.MachineSecret] for its weaker guarantee.
func NewCipherService(keys KeyService, secret []byte, log *logger.Logger) CipherService {
	return &cipherService{
		keys:   keys,
		secret: secret,
		logger: log,
	}
}

// derivedKey returns the cached symmetric key, deriving it on first use.
func (c *cipherService) derivedKey() ([]byte, error) {
	c.once.Do(func() {
		secret := c.secret
		if len(secret) == 0 {
			secret = c.keys.MachineSecret()
		}
		c.key, c.keyErr = c.keys.Derive(secret)
	})
	return c.key, c.keyErr
}

// Encrypt implements [CipherService]. A random 12-byte nonce is prepended to
// the ciphertext so that the decryption side can locate it:
// blob = nonce ‖ ciphertext+tag.
func (c *cipherService) Encrypt(plaintext []byte) ([]byte, error) {
	key, err := c.derivedKey()
	if err != nil {
		c.logger.Err(err).Str("func", "*cipherService.Encrypt").Msg("key derivation failed")
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Decrypt implements [CipherService]. The blob must be at least as long as
// the GCM nonce (12 bytes); anything shorter is treated as truncated and
// fails authentication.
func (c *cipherService) Decrypt(blob []byte) ([]byte, error) {
	key, err := c.derivedKey()
	if err != nil {
		c.logger.Err(err).Str("func", "*cipherService.Decrypt").Msg("key derivation failed")
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrAuthenticationFailed)
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// Decrypt and verify auth tag. An error here almost always means the
	// wrong secret produced a wrong key.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// EncryptString implements [CipherService]. The blob is Base64
// (standard encoding) so it can live in text columns.
func (c *cipherService) EncryptString(text string) (string, error) {
	blob, err := c.Encrypt([]byte(text))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptString implements [CipherService].
func (c *cipherService) DecryptString(encoded string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	plaintext, err := c.Decrypt(blob)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptFile implements [CipherService]. The input is read fully and the
// sealed blob written with owner-only permissions. os.ReadFile/os.WriteFile
// close their handles on every exit path, including error paths.
func (c *cipherService) EncryptFile(inputPath, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = inputPath + encSuffix
	}

	plaintext, err := readFile(inputPath)
	if err != nil {
		c.logger.Err(err).Str("func", "*cipherService.EncryptFile").Str("path", inputPath).Msg("error reading input file")
		return "", fmt.Errorf("read input file: %w", err)
	}

	blob, err := c.Encrypt(plaintext)
	if err != nil {
		return "", err
	}

	if err := writeFile(outputPath, blob); err != nil {
		c.logger.Err(err).Str("func", "*cipherService.EncryptFile").Str("path", outputPath).Msg("error writing encrypted file")
		return "", fmt.Errorf("write encrypted file: %w", err)
	}

	c.logger.Debug().Str("func", "*cipherService.EncryptFile").Str("in", inputPath).Str("out", outputPath).Msg("file encrypted")
	return outputPath, nil
}

// DecryptFile implements [CipherService].
func (c *cipherService) DecryptFile(inputPath, outputPath string) (string, error) {
	if outputPath == "" {
		if strings.HasSuffix(inputPath, encSuffix) {
			outputPath = strings.TrimSuffix(inputPath, encSuffix)
		} else {
			outputPath = inputPath + ".dec"
		}
	}

	blob, err := readFile(inputPath)
	if err != nil {
		c.logger.Err(err).Str("func", "*cipherService.DecryptFile").Str("path", inputPath).Msg("error reading encrypted file")
		return "", fmt.Errorf("read encrypted file: %w", err)
	}

	plaintext, err := c.Decrypt(blob)
	if err != nil {
		return "", err
	}

	if err := writeFile(outputPath, plaintext); err != nil {
		c.logger.Err(err).Str("func", "*cipherService.DecryptFile").Str("path", outputPath).Msg("error writing decrypted file")
		return "", fmt.Errorf("write decrypted file: %w", err)
	}

	c.logger.Debug().Str("func", "*cipherService.DecryptFile").Str("in", inputPath).Str("out", outputPath).Msg("file decrypted")
	return outputPath, nil
}

// Verify implements [CipherService]. The underlying decryption failure is
// deliberately swallowed: Verify answers "can the current key open this?"
// and nothing else.
func (c *cipherService) Verify(blob []byte) bool {
	_, err := c.Decrypt(blob)
	return err == nil
}

// Rotate re-encrypts blob from oldSecret to newSecret: decrypt under the key
// derived from oldSecret, then encrypt under the key derived from newSecret.
//
// The operation is all-or-nothing. If decryption under the old secret fails,
// no re-encryption occurs and the caller's blob is untouched; the original
// blob is likewise untouched if re-encryption fails. Two independent cipher
// instances are used so that neither key cache ever holds both keys.
func Rotate(keys KeyService, oldSecret, newSecret, blob []byte, log *logger.Logger) ([]byte, error) {
	oldCipher := NewCipherService(keys, oldSecret, log)
	plaintext, err := oldCipher.Decrypt(blob)
	if err != nil {
		return nil, fmt.Errorf("rotation aborted: %w", err)
	}

	newCipher := NewCipherService(keys, newSecret, log)
	rotated, err := newCipher.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("rotation re-encrypt: %w", err)
	}

	return rotated, nil
}
