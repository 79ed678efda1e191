// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"crypto/subtle"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// newMAC builds a keyed BLAKE2b-256 hash state over the authentication
// subkey. The MAC covers the header bytes followed by every ciphertext block
// in order; the 32-byte Sum is the container's trailing tag.
func newMAC(authKey []byte) (hash.Hash, error) {
	h, err := blake2b.New256(authKey)
	if err != nil {
		return nil, fmt.Errorf("container: unable to initialize mac: %w", err)
	}
	return h, nil
}

// verifyTag reports whether got matches want in constant time. Both must be
// TagSize bytes; a length mismatch is treated as a mismatch rather than a
// panic, since it can only happen on a malformed or truncated container that
// the caller has already sized to TagSize before calling this.
func verifyTag(want, got []byte) bool {
	if len(want) != TagSize || len(got) != TagSize {
		return false
	}
	return subtle.ConstantTimeCompare(want, got) == 1
}
