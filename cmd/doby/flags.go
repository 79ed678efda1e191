// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dobycrypt/doby/crypto/container"
	"github.com/dobycrypt/doby/internal/cpufeature"
)

// paramsFromFlags builds a Params value from the parsed CLI flags. It reads
// the password flag only when it was given explicitly; otherwise Password is
// left nil so the caller can fall back to an interactive prompt.
func paramsFromFlags(cmd *cobra.Command) (container.Params, error) {
	flags := cmd.Flags()

	p := container.DefaultParams()

	p.ForceEncrypt, _ = flags.GetBool("force-encrypt")
	p.TimeCost, _ = flags.GetUint32("time-cost")
	p.MemoryCost, _ = flags.GetUint32("memory-cost")
	p.Parallelism, _ = flags.GetUint8("parallelism")
	p.BlockSize, _ = flags.GetInt("block-size")

	cipherFlag, _ := flags.GetString("cipher")
	switch cipherFlag {
	case "":
		p.CipherChoice = cpufeature.DefaultCipher()
	case "aes", "aes256", "aes-ctr", "aes256-ctr":
		p.CipherChoice = container.AES256CTR
	case "xchacha20", "chacha20":
		p.CipherChoice = container.XChaCha20
	default:
		return container.Params{}, fmt.Errorf("%w: unknown cipher %q", container.ErrInvalidParams, cipherFlag)
	}

	if flags.Changed("password") {
		pw, _ := flags.GetString("password")
		p.Password = []byte(pw)
	}

	return p, nil
}

// resolvePassword prompts on the controlling terminal when --password was
// not supplied. The prompt never echoes input. When confirm is set (a fresh
// container is being created from a typed secret), the password is prompted
// for twice and the attempt fails closed on any mismatch.
func resolvePassword(_ *cobra.Command, confirm bool) ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("unable to read password: %w", err)
	}

	if !confirm {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	again, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		wipe(pw)
		return nil, fmt.Errorf("unable to read password confirmation: %w", err)
	}
	defer wipe(again)

	if !bytes.Equal(pw, again) {
		wipe(pw)
		return nil, fmt.Errorf("%w: passwords do not match", container.ErrInvalidParams)
	}

	return pw, nil
}
