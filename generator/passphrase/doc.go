// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package passphrase provides passphrase generation based on DiceWare.
//
// Passphrases are used for highly sensitive secrets such as master keys.
package passphrase
