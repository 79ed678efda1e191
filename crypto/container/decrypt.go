// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"crypto/cipher"
	"fmt"
	"hash"
	"io"
)

// Decrypt parses a container header from r, re-derives the subkeys, and
// streams authenticated plaintext to w. Because r may be a non-seekable
// pipe, the engine never knows in advance where ciphertext ends and the
// trailing tag begins; it holds the last TagSize bytes seen in a rolling
// tail buffer and only releases older bytes for decryption once newer bytes
// confirm they aren't part of the tag.
//
// Plaintext may be written to w before the tag is checked. Callers MUST NOT
// trust w's contents until Decrypt returns a nil error.
func Decrypt(w io.Writer, r io.Reader, p Params) error {
	h, err := parseHeader(r)
	if err != nil {
		return err
	}

	keys, err := deriveSubkeys(p.Password, h)
	if err != nil {
		return err
	}
	defer keys.Close()

	m, err := newMAC(keys.authKey.Bytes())
	if err != nil {
		return err
	}
	if _, err := m.Write(h.bytes()); err != nil {
		return fmt.Errorf("container: unable to update mac with header: %w", err)
	}

	stream, err := newStreamCipher(h.CipherTag, keys.encKey.Bytes(), keys.nonce.Bytes())
	if err != nil {
		return err
	}

	blockSize := p.BlockSize
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	tail := make([]byte, 0, TagSize+blockSize)
	readBuf := make([]byte, blockSize)

	for {
		n, rerr := r.Read(readBuf)
		if n > 0 {
			tail = append(tail, readBuf[:n]...)
			if len(tail) > TagSize {
				release := tail[:len(tail)-TagSize]
				if err := authenticateAndDecrypt(m, stream, w, release); err != nil {
					return err
				}
				tail = append(tail[:0], tail[len(tail)-TagSize:]...)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("container: unable to read ciphertext: %w", rerr)
		}
	}

	if len(tail) != TagSize {
		return ErrTruncated
	}

	computed := m.Sum(nil)
	if !verifyTag(computed, tail) {
		return ErrAuthenticationFailed
	}

	return nil
}

// authenticateAndDecrypt feeds block to the running MAC, then decrypts it in
// place and writes it to w. Order matters: Encrypt-then-MAC means the MAC
// covers ciphertext, so it must be updated before the keystream is applied.
func authenticateAndDecrypt(m hash.Hash, stream cipher.Stream, w io.Writer, block []byte) error {
	if _, err := m.Write(block); err != nil {
		return fmt.Errorf("container: unable to update mac with ciphertext: %w", err)
	}
	stream.XORKeyStream(block, block)
	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("container: unable to write plaintext: %w", err)
	}
	return nil
}
