// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package cpufeature resolves the default stream cipher for an invocation
// from the host CPU's advertised instruction set.
package cpufeature

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/dobycrypt/doby/crypto/container"
	"github.com/dobycrypt/doby/log"
)

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }

var forcedSoftware atomicBool

// ForceSoftwareCipher disables the AES-NI probe for the remainder of the
// process, so the default always resolves to XChaCha20. Intended for tests
// that must be reproducible across heterogeneous CI hardware.
func ForceSoftwareCipher() {
	forcedSoftware.setTrue()
	log.Level(log.DebugLevel).Message("doby: hardware AES probe disabled, defaulting to xchacha20")
}

// DefaultCipher probes the host CPU for AES hardware acceleration and
// returns AES256CTR when present, XChaCha20 otherwise. A probe that cannot
// confirm hardware support must fail closed to the CPU-agnostic cipher,
// never the other way around.
func DefaultCipher() container.Cipher {
	if forcedSoftware.isSet() {
		return container.XChaCha20
	}
	if hasAESHardware() {
		return container.AES256CTR
	}
	return container.XChaCha20
}

// hasAESHardware reports whether the running CPU advertises the
// instructions AES-256-CTR needs to run at hardware speed: AES-NI on
// amd64, the ARMv8 Cryptography Extensions on arm64.
func hasAESHardware() bool {
	switch {
	case cpu.X86.HasAES && cpu.X86.HasSSE41:
		return true
	case cpu.ARM64.HasAES:
		return true
	default:
		return false
	}
}
