// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package password provides a library for generating high-entropy random
// password strings via the crypto/rand package.
package password
