// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/dobycrypt/doby/ioutil/atomic"
)

// errAborted is fed into the output pipe to unwind atomic.WriteFile without
// leaving a partial file behind when the pipeline fails midstream.
var errAborted = errors.New("doby: aborted, discarding partial output")

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open input %q: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput returns a writer the caller streams to, plus commit/abort
// functions. commit finalizes the output atomically; abort discards
// whatever was written so far and leaves any pre-existing file untouched.
//
// For stdout, writes are unbuffered and there is no atomicity to offer:
// commit and abort are both no-ops there.
func openOutput(path string, interactive bool) (w io.Writer, commit func() error, abort func() error, err error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, func() error { return nil }, nil
	}

	if interactive {
		if _, statErr := os.Stat(path); statErr == nil {
			if !confirmOverwrite(path) {
				return nil, nil, nil, fmt.Errorf("not overwriting existing file %q", path)
			}
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return nil, nil, nil, fmt.Errorf("unable to stat output %q: %w", path, statErr)
		}
	}

	pr, pw := io.Pipe()

	var (
		wg       sync.WaitGroup
		writeErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		writeErr = atomic.WriteFile(path, pr)
	}()

	commit = func() error {
		_ = pw.Close()
		wg.Wait()
		return writeErr
	}
	abort = func() error {
		_ = pw.CloseWithError(errAborted)
		wg.Wait()
		return nil
	}

	return pw, commit, abort, nil
}

func confirmOverwrite(path string) bool {
	fmt.Fprintf(os.Stderr, "%s already exists. Overwrite? [y/N] ", path)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
