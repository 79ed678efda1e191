// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package password

import (
	"fmt"

	"github.com/sethvargo/go-password/password"
)

// Generate returns a random password of length characters, containing
// exactly numDigits digits and numSymbols symbols, drawn from crypto/rand.
// noUpper disables uppercase letters; allowRepeat permits the same character
// to appear more than once.
func Generate(length, numDigits, numSymbols int, noUpper, allowRepeat bool) (string, error) {
	pw, err := password.Generate(length, numDigits, numSymbols, noUpper, allowRepeat)
	if err != nil {
		return "", fmt.Errorf("unable to generate password: %w", err)
	}
	return pw, nil
}

// FromProfile generates a password following the given profile.
func FromProfile(p *Profile) (string, error) {
	if p == nil {
		return "", fmt.Errorf("password: profile must not be nil")
	}
	return Generate(p.Length, p.NumDigits, p.NumSymbol, p.NoUpper, p.AllowRepeat)
}

// Paranoid generates a password using ProfileParanoid.
func Paranoid() (string, error) {
	return FromProfile(ProfileParanoid)
}

// NoSymbol generates a password using ProfileNoSymbol.
func NoSymbol() (string, error) {
	return FromProfile(ProfileNoSymbol)
}

// Strong generates a password using ProfileStrong.
func Strong() (string, error) {
	return FromProfile(ProfileStrong)
}
