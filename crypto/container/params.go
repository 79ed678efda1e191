// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package container

import "fmt"

// Cipher identifies the stream cipher used to protect a container.
type Cipher uint8

const (
	// AES256CTR selects AES-256 in counter mode. FIPS compliant, hardware
	// accelerated on CPUs advertising AES-NI.
	AES256CTR Cipher = 0x00
	// XChaCha20 selects the extended-nonce ChaCha20 stream cipher. CPU-agnostic,
	// the safe default when hardware acceleration can't be confirmed.
	XChaCha20 Cipher = 0x01
)

// String returns a human readable name for the cipher.
func (c Cipher) String() string {
	switch c {
	case AES256CTR:
		return "aes256-ctr"
	case XChaCha20:
		return "xchacha20"
	default:
		return fmt.Sprintf("cipher(0x%02x)", uint8(c))
	}
}

// nonceSize returns the nonce length required by the cipher.
func (c Cipher) nonceSize() (int, error) {
	switch c {
	case AES256CTR:
		return aesctrNonceSize, nil
	case XChaCha20:
		return xchacha20NonceSize, nil
	default:
		return 0, fmt.Errorf("container: %w: 0x%02x", ErrUnknownCipher, uint8(c))
	}
}

const (
	// DefaultTimeCost is the Argon2id iteration count applied when the caller
	// does not override it.
	DefaultTimeCost = uint32(10)
	// DefaultMemoryCost is the Argon2id memory cost, in kilobytes.
	DefaultMemoryCost = uint32(4096)
	// DefaultParallelism is the Argon2id lane count.
	DefaultParallelism = uint8(4)
	// DefaultBlockSize is the streaming I/O chunk size, in bytes.
	DefaultBlockSize = 65536

	// minMemoryCost is the lowest Argon2id memory cost accepted on decrypt,
	// matching the header validation invariant (memory >= 8).
	minMemoryCost = uint32(8)
)

// Params carries the user-supplied cryptographic and I/O knobs for a single
// invocation. Once constructed, a Params value is never mutated.
type Params struct {
	// TimeCost is the Argon2id iteration count.
	TimeCost uint32
	// MemoryCost is the Argon2id memory cost, in kilobytes.
	MemoryCost uint32
	// Parallelism is the Argon2id lane count.
	Parallelism uint8
	// BlockSize is the number of plaintext/ciphertext bytes processed per
	// streaming loop iteration.
	BlockSize int
	// CipherChoice selects the stream cipher used on encryption. Ignored on
	// decrypt, where the cipher is read back from the container header.
	CipherChoice Cipher
	// ForceEncrypt instructs the mode dispatcher to encrypt even if the input
	// already begins with the container magic.
	ForceEncrypt bool
	// Password is the secret byte sequence the key schedule stretches. Never
	// logged.
	Password []byte
}

// DefaultParams returns a Params value populated with the specification's
// documented CLI defaults, with CipherChoice set to XChaCha20 (the
// CPU-agnostic cipher) and Password left empty.
func DefaultParams() Params {
	return Params{
		TimeCost:     DefaultTimeCost,
		MemoryCost:   DefaultMemoryCost,
		Parallelism:  DefaultParallelism,
		BlockSize:    DefaultBlockSize,
		CipherChoice: XChaCha20,
	}
}

// Validate ensures the parameter set is usable before any I/O is attempted.
func (p Params) Validate() error {
	if p.TimeCost < 1 {
		return fmt.Errorf("container: %w: time cost must be at least 1", ErrInvalidParams)
	}
	if p.MemoryCost < minMemoryCost {
		return fmt.Errorf("container: %w: memory cost must be at least %d KiB", ErrInvalidParams, minMemoryCost)
	}
	if p.Parallelism < 1 {
		return fmt.Errorf("container: %w: parallelism must be at least 1", ErrInvalidParams)
	}
	if p.BlockSize <= 0 {
		return fmt.Errorf("container: %w: block size must be positive", ErrInvalidParams)
	}
	if _, err := p.CipherChoice.nonceSize(); err != nil {
		return err
	}
	if len(p.Password) == 0 {
		return fmt.Errorf("container: %w: password must not be empty", ErrInvalidParams)
	}
	return nil
}
