// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dobycrypt/doby/generator/passphrase"
	"github.com/dobycrypt/doby/generator/password"
	"github.com/dobycrypt/doby/generator/randomness"
	"github.com/dobycrypt/doby/ioutil/atomic"
)

// newGenpassCmd wires a secret generator alongside the core encrypt/decrypt
// command, so a container password never has to be typed by hand.
func newGenpassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "generate a high-entropy password or passphrase",
		RunE:  runGenpass,
	}

	flags := cmd.Flags()
	flags.String("profile", "strong", `password strength profile: "paranoid", "strong", or "no-symbol"`)
	flags.Bool("passphrase", false, "generate a diceware passphrase instead of a character password")
	flags.Int("words", passphrase.StrongWordCount, "word count for --passphrase, clamped to 4-24")
	flags.Int("raw-hex", 0, "generate N hex characters of raw entropy instead of a password or passphrase")
	flags.String("out", "", "write the generated secret to this path instead of stdout")

	return cmd
}

func runGenpass(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	usePassphrase, _ := flags.GetBool("passphrase")
	rawHexLen, _ := flags.GetInt("raw-hex")

	var secret string
	var err error

	switch {
	case rawHexLen > 0:
		secret, err = rawEntropyHex(rawHexLen)
	case usePassphrase:
		words, _ := flags.GetInt("words")
		secret, err = passphrase.Diceware(words)
	default:
		profile, _ := flags.GetString("profile")
		switch strings.ToLower(profile) {
		case "paranoid":
			secret, err = password.Paranoid()
		case "no-symbol", "nosymbol":
			secret, err = password.NoSymbol()
		case "strong", "":
			secret, err = password.Strong()
		default:
			return fmt.Errorf("unknown profile %q", profile)
		}
	}
	if err != nil {
		return err
	}

	out, _ := flags.GetString("out")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), secret)
		return nil
	}

	return atomic.WriteFile(out, strings.NewReader(secret+"\n"))
}

func rawEntropyHex(length int) (string, error) {
	return randomness.Hex(length)
}
