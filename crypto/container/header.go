// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Magic identifies a doby container. "DOBY" in ASCII.
var Magic = [4]byte{0x44, 0x4F, 0x42, 0x59}

const (
	saltSize = 64
	// HeaderSize is the fixed, wire-exact size of the container header.
	HeaderSize = len(Magic) + saltSize + 4 + 4 + 1 + 1
	// TagSize is the size of the trailing BLAKE2b authentication tag.
	TagSize = 32
	// Overhead is the total per-container byte cost: header plus tag.
	Overhead = HeaderSize + TagSize
)

// Header is the fixed-layout record written at the start of every container.
// Every byte of the header participates in the MAC, in the order below, which
// is why it is not self-authenticating on its own: authentication happens
// implicitly once the ciphertext and tag follow.
type Header struct {
	Salt        [saltSize]byte
	TimeCost    uint32
	MemoryCost  uint32
	Parallelism uint8
	CipherTag   Cipher
}

// newHeader builds a header from validated params and a freshly generated
// salt.
func newHeader(p Params, salt [saltSize]byte) Header {
	return Header{
		Salt:        salt,
		TimeCost:    p.TimeCost,
		MemoryCost:  p.MemoryCost,
		Parallelism: p.Parallelism,
		CipherTag:   p.CipherChoice,
	}
}

// bytes serializes the header in wire order.
func (h Header) bytes() []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, Magic[:]...)
	buf = append(buf, h.Salt[:]...)

	var tmp4 [4]byte
	binary.BigEndian.PutUint32(tmp4[:], h.TimeCost)
	buf = append(buf, tmp4[:]...)

	binary.BigEndian.PutUint32(tmp4[:], h.MemoryCost)
	buf = append(buf, tmp4[:]...)

	buf = append(buf, h.Parallelism, byte(h.CipherTag))

	return buf
}

// emit writes the 78-byte header to w.
func emit(w io.Writer, h Header) error {
	if _, err := w.Write(h.bytes()); err != nil {
		return fmt.Errorf("container: unable to write header: %w", err)
	}
	return nil
}

// parseHeader reads exactly HeaderSize bytes from r and validates them.
// It returns ErrBadMagic when the first four bytes mismatch, and wraps
// ErrMalformedHeader for any other structural defect.
func parseHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("container: %w: %v", ErrMalformedHeader, err)
		}
		return Header{}, fmt.Errorf("container: unable to read header: %w", err)
	}
	return decodeHeader(buf[:])
}

func decodeHeader(buf []byte) (Header, error) {
	if len(buf) != HeaderSize {
		return Header{}, fmt.Errorf("container: %w: expected %d bytes, got %d", ErrMalformedHeader, HeaderSize, len(buf))
	}

	var h Header
	offset := 0

	if buf[0] != Magic[0] || buf[1] != Magic[1] || buf[2] != Magic[2] || buf[3] != Magic[3] {
		return Header{}, ErrBadMagic
	}
	offset += len(Magic)

	copy(h.Salt[:], buf[offset:offset+saltSize])
	offset += saltSize

	h.TimeCost = binary.BigEndian.Uint32(buf[offset : offset+4])
	offset += 4

	h.MemoryCost = binary.BigEndian.Uint32(buf[offset : offset+4])
	offset += 4

	h.Parallelism = buf[offset]
	offset++

	h.CipherTag = Cipher(buf[offset])

	if h.TimeCost < 1 || h.MemoryCost < minMemoryCost || h.Parallelism < 1 {
		return Header{}, fmt.Errorf("container: %w: %w: argon2 parameter below minimum", ErrMalformedHeader, ErrInvalidParams)
	}
	if _, err := h.CipherTag.nonceSize(); err != nil {
		return Header{}, fmt.Errorf("container: %w: %w", ErrMalformedHeader, err)
	}

	return h, nil
}
