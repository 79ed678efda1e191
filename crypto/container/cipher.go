// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"crypto/cipher"
	"fmt"

	"github.com/dobycrypt/doby/crypto/container/internal/aesctr"
	"github.com/dobycrypt/doby/crypto/container/internal/xchacha20"
)

const (
	aesctrNonceSize    = aesctr.NonceSize
	xchacha20NonceSize = xchacha20.NonceSize
)

// newStreamCipher dispatches to the cipher variant named by choice. The two
// variants have different nonce widths and different concrete state types,
// but share the single cipher.Stream capability; this is the only place that
// performs dynamic dispatch on the cipher choice. The hot loop in the
// encrypt/decrypt engines calls through the returned cipher.Stream, which is
// a monomorphic interface call from there on.
func newStreamCipher(choice Cipher, key, nonce []byte) (cipher.Stream, error) {
	switch choice {
	case AES256CTR:
		return aesctr.New(key, nonce)
	case XChaCha20:
		return xchacha20.New(key, nonce)
	default:
		return nil, fmt.Errorf("container: %w: 0x%02x", ErrUnknownCipher, uint8(choice))
	}
}
