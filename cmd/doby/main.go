// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main provides the doby command-line entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dobycrypt/doby/crypto/container"
	"github.com/dobycrypt/doby/internal/logging"
	"github.com/dobycrypt/doby/log"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

func main() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetFactory(logging.NewConsoleFactory())
	} else {
		log.SetFactory(logging.NewFactory(os.Stderr))
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Level(log.ErrorLevel).Error(err).Message("doby: operation failed")
		fmt.Fprintf(os.Stderr, "doby: %s\n", diagnosticFor(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "doby [flags] [INPUT] [OUTPUT]",
		Short:   "Authenticated symmetric encryption of byte streams",
		Version: Version,
		Long: `doby encrypts or decrypts a byte stream, choosing the direction by
inspecting whether the input already begins with a doby container header.

INPUT and OUTPUT may be a path or "-" for stdin/stdout; both default to "-".`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE:         runDoby,
	}

	root.AddCommand(newGenpassCmd())

	// Cobra's automatic --version flag has no shorthand; bind -V explicitly
	// per the documented CLI surface. -v is reserved for --verbose.
	root.Flags().BoolP("version", "V", false, "print version, exit 0")

	flags := root.Flags()
	flags.BoolP("force-encrypt", "f", false, "encrypt even if input begins with the container magic")
	flags.BoolP("interactive", "i", false, "prompt before overwriting an existing output file")
	flags.String("password", "", "password bytes (UTF-8); prompted interactively when omitted")
	flags.Uint32P("time-cost", "t", container.DefaultTimeCost, "argon2id iteration count")
	flags.Uint32P("memory-cost", "m", container.DefaultMemoryCost, "argon2id memory cost, in kilobytes")
	flags.Uint8P("parallelism", "p", container.DefaultParallelism, "argon2id lane count (1-255)")
	flags.IntP("block-size", "b", container.DefaultBlockSize, "streaming I/O buffer size in bytes")
	flags.StringP("cipher", "c", "", `cipher to use on encrypt: "aes" or "xchacha20" (default: auto-detect); ignored on decrypt`)
	flags.BoolP("verbose", "v", false, "log a summary of bytes processed to stderr")

	return root
}

// diagnosticFor renders a user-facing message that never distinguishes a
// wrong password from tampered ciphertext, per the authentication-failure
// messaging requirement.
func diagnosticFor(err error) string {
	switch {
	case errors.Is(err, container.ErrAuthenticationFailed):
		return "authentication failed: wrong password or corrupted input"
	case errors.Is(err, container.ErrTruncated):
		return "truncated input: missing authentication tag"
	case errors.Is(err, container.ErrMalformedHeader):
		return "malformed container header"
	case errors.Is(err, container.ErrInvalidParams):
		return fmt.Sprintf("invalid arguments: %v", err)
	case errors.Is(err, container.ErrEntropyUnavailable):
		return "system entropy source unavailable"
	default:
		return err.Error()
	}
}

func runDoby(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := "-", "-"
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	p, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	isContainer, in, err := container.Peek(in)
	if err != nil {
		return err
	}
	encrypting := p.ForceEncrypt || !isContainer

	if p.Password == nil {
		pw, err := resolvePassword(cmd, encrypting)
		if err != nil {
			return err
		}
		p.Password = pw
	}
	defer wipe(p.Password)

	if err := p.Validate(); err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	out, commit, abort, err := openOutput(outputPath, interactive)
	if err != nil {
		return err
	}

	counting := &countingWriter{w: out}
	if err := container.Dispatch(counting, in, p); err != nil {
		_ = abort()
		return err
	}

	if err := commit(); err != nil {
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.Field("bytes_written", counting.n).Message(fmt.Sprintf("doby: wrote %s", humanize.Bytes(uint64(counting.n))))
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
