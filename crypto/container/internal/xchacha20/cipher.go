// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package xchacha20 provides the XChaCha20 keystream used by the CPU-agnostic
// cipher suite.
package xchacha20

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// NonceSize is the width of the extended XChaCha20 nonce, in bytes.
const NonceSize = chacha20.NonceSizeX

// New builds a stateful XChaCha20 keystream starting at block counter zero.
// Successive calls to the returned cipher.Stream's XORKeyStream never reset
// the counter: they behave as if operating over one contiguous buffer.
func New(key, nonce []byte) (cipher.Stream, error) {
	if len(key) != chacha20.KeySize {
		return nil, fmt.Errorf("xchacha20: key must be %d bytes, got %d", chacha20.KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("xchacha20: nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	s, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("xchacha20: unable to initialize stream cipher: %w", err)
	}

	return s, nil
}
