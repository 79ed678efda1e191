// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"fmt"
	"hash"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

// HKDF info labels. Each expansion call is bound to one of these ASCII
// strings so that the nonce, encryption subkey and authentication subkey are
// cryptographically independent even though they share the same Argon2id
// master key.
var (
	infoNonce    = []byte("doby_nonce")
	infoEncKey   = []byte("doby_encryption_key")
	infoAuthKey  = []byte("doby_authentication_key")
	encKeySize   = 32
	authKeySize  = 32
)

// subkeys holds the three values derived from a password and salt for one
// container. Close must be called on every exit path to zero the backing
// memory; callers should defer it immediately after a successful deriveSubkeys.
type subkeys struct {
	nonce   *memguard.LockedBuffer
	encKey  *memguard.LockedBuffer
	authKey *memguard.LockedBuffer
}

// Close zeroizes and releases all three locked buffers. Safe to call more
// than once.
func (s *subkeys) Close() {
	if s == nil {
		return
	}
	s.nonce.Destroy()
	s.encKey.Destroy()
	s.authKey.Destroy()
}

// deriveSubkeys stretches password with Argon2id under the given header
// parameters and salt, then expands the resulting master key into a nonce,
// an encryption subkey and an authentication subkey via HKDF keyed with
// BLAKE2b-512. The nonce length is the cipher's native width; encryption and
// authentication subkeys are always 32 bytes.
func deriveSubkeys(password []byte, h Header) (*subkeys, error) {
	nonceSize, err := h.CipherTag.nonceSize()
	if err != nil {
		return nil, err
	}

	master := argon2.IDKey(password, h.Salt[:], h.TimeCost, h.MemoryCost, h.Parallelism, 32)
	defer memguard.WipeBytes(master)

	out := &subkeys{}

	nonce, err := expand(master, h.Salt[:], infoNonce, nonceSize)
	if err != nil {
		return nil, err
	}
	out.nonce = memguard.NewBufferFromBytes(nonce)

	encKey, err := expand(master, h.Salt[:], infoEncKey, encKeySize)
	if err != nil {
		out.Close()
		return nil, err
	}
	out.encKey = memguard.NewBufferFromBytes(encKey)

	authKey, err := expand(master, h.Salt[:], infoAuthKey, authKeySize)
	if err != nil {
		out.Close()
		return nil, err
	}
	out.authKey = memguard.NewBufferFromBytes(authKey)

	return out, nil
}

// expand runs HKDF (extract with the container salt, then expand bound to
// info) with BLAKE2b-512 as the underlying hash.
func expand(master, salt, info []byte, size int) ([]byte, error) {
	kdf := hkdf.New(newBlake2b512, master, salt, info)
	out := make([]byte, size)
	if _, err := io.ReadFull(kdf, out); err != nil {
		return nil, fmt.Errorf("container: hkdf expansion failed: %w", err)
	}
	return out, nil
}

func newBlake2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		// blake2b.New512 only fails for an oversized key; we never pass one.
		panic(err)
	}
	return h
}
