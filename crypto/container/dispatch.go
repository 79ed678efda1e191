// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"bytes"
	"io"
)

// peekLen is the number of leading bytes inspected to decide encrypt vs
// decrypt. It equals len(Magic).
const peekLen = len(Magic)

// prependReader yields the bytes of head first, then falls through to the
// wrapped reader. It lets the dispatcher "un-read" the bytes it peeked from
// a source that may be an unseekable pipe.
type prependReader struct {
	head io.Reader
	rest io.Reader
}

func (p *prependReader) Read(buf []byte) (int, error) {
	if p.head != nil {
		n, err := p.head.Read(buf)
		if err == io.EOF {
			p.head = nil
			err = nil
		}
		if n > 0 || err != nil {
			return n, err
		}
	}
	return p.rest.Read(buf)
}

// Peek inspects up to len(Magic) leading bytes of r and reports whether they
// match the container magic. It returns a reader that replays those bytes
// before falling through to r, so the peek is safe on unseekable sources
// such as pipes. Callers that need to know the dispatch direction ahead of
// time (to decide, say, whether a password needs confirmation) can call
// Peek themselves and feed the returned reader onward to Dispatch.
func Peek(r io.Reader) (isContainer bool, out io.Reader, err error) {
	var peek [peekLen]byte
	n, err := io.ReadFull(r, peek[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, nil, err
	}

	reconstructed := &prependReader{head: bytes.NewReader(peek[:n]), rest: r}
	return n == peekLen && bytes.Equal(peek[:], Magic[:]), reconstructed, nil
}

// Dispatch inspects input, decides whether to encrypt or decrypt, and runs
// the corresponding engine. The decision rules, in order:
//
//  1. ForceEncrypt set → encrypt, unconditionally.
//  2. Fewer than 4 bytes available → encrypt (cannot be a valid header).
//  3. First 4 bytes equal Magic → decrypt; those bytes are fed back to the
//     header parser.
//  4. Otherwise → encrypt; the already-read bytes are presented as the
//     first bytes of plaintext.
func Dispatch(w io.Writer, r io.Reader, p Params) error {
	if p.ForceEncrypt {
		return Encrypt(w, r, p)
	}

	isContainer, reconstructed, err := Peek(r)
	if err != nil {
		return err
	}

	if isContainer {
		return Decrypt(w, reconstructed, p)
	}

	return Encrypt(w, reconstructed, p)
}
