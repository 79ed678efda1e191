// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Encrypt reads plaintext from r, writes a complete doby container to w, and
// zeroes all derived key material before returning, on every exit path.
//
// The steps below follow the documented pipeline: generate salt, derive
// subkeys, emit the header and feed it to the MAC, stream
// read/encrypt/MAC/write, finalize and append the tag. Subkeys are derived
// before the header is written because the MAC key comes from them. Nothing is buffered beyond one block_size chunk; Encrypt
// is safe to use with inputs and outputs larger than memory.
func Encrypt(w io.Writer, r io.Reader, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var salt [saltSize]byte
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return fmt.Errorf("container: %w: %v", ErrEntropyUnavailable, err)
	}

	h := newHeader(p, salt)

	keys, err := deriveSubkeys(p.Password, h)
	if err != nil {
		return err
	}
	defer keys.Close()

	m, err := newMAC(keys.authKey.Bytes())
	if err != nil {
		return err
	}

	if err := emit(w, h); err != nil {
		return err
	}
	if _, err := m.Write(h.bytes()); err != nil {
		return fmt.Errorf("container: unable to update mac with header: %w", err)
	}

	stream, err := newStreamCipher(h.CipherTag, keys.encKey.Bytes(), keys.nonce.Bytes())
	if err != nil {
		return err
	}

	buf := make([]byte, p.BlockSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			stream.XORKeyStream(chunk, chunk)
			if _, werr := m.Write(chunk); werr != nil {
				return fmt.Errorf("container: unable to update mac with ciphertext: %w", werr)
			}
			if _, werr := w.Write(chunk); werr != nil {
				return fmt.Errorf("container: unable to write ciphertext: %w", werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("container: unable to read plaintext: %w", rerr)
		}
	}

	tag := m.Sum(nil)
	if _, err := w.Write(tag); err != nil {
		return fmt.Errorf("container: unable to write authentication tag: %w", err)
	}

	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("container: unable to flush output: %w", err)
		}
	}

	return nil
}
