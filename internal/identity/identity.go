// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity computes content-based document identities. A document's
// identity is the SHA-256 digest of its bytes, so it survives renames and
// moves: the same bytes are the same document wherever they live, and a
// changed file is a different document.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// chunkSize is the read buffer for streaming hashing. Large PDFs are hashed
// without ever loading the whole file into memory.
const chunkSize = 8 * 1024

// ContentHash returns the 64-character lowercase hex SHA-256 digest of the
// file at path. The file is read in binary mode in fixed-size chunks, so the
// digest is bit-identical across platforms for identical content.
func ContentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("error hashing file content: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
