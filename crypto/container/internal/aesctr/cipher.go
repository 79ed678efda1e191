// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package aesctr provides the AES-256-CTR keystream used by the FIPS
// compliant cipher suite.
package aesctr

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// NonceSize is the width of the initial counter block, in bytes.
const NonceSize = aes.BlockSize

// New builds a stateful CTR keystream starting at the given nonce, with the
// counter portion zeroed, as required by the specification. Successive calls
// to the returned cipher.Stream's XORKeyStream never reset the counter: they
// behave as if operating over one contiguous buffer.
func New(key, nonce []byte) (cipher.Stream, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("aesctr: key must be 32 bytes, got %d", len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("aesctr: nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aesctr: unable to initialize block cipher: %w", err)
	}

	return cipher.NewCTR(block, nonce), nil
}
