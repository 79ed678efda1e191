// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logging wires the abstract log.Factory/log.Logger interfaces to a
// zerolog writer, console-formatted for a TTY and structured for anything
// else.
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dobycrypt/doby/log"
)

// NewFactory builds a log.Factory writing to w. Every logger minted by the
// factory carries the same "run_id" field, a UUID generated once when the
// factory is built, so that a password
// prompt, an I/O error and a final exit code logged across one invocation can
// be correlated in aggregated output.
func NewFactory(w io.Writer) log.Factory {
	zl := zerolog.New(w).With().Timestamp().Str("run_id", uuid.NewString()).Logger()
	return &factory{base: zl}
}

// NewConsoleFactory builds a log.Factory formatted for a human reading a
// terminal directly, rather than an aggregator.
func NewConsoleFactory() log.Factory {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return NewFactory(cw)
}

type factory struct {
	base zerolog.Logger
}

func (f *factory) New() log.Logger {
	return &logger{zl: f.base, evt: f.base.Info()}
}

type logger struct {
	zl  zerolog.Logger
	evt *zerolog.Event
}

func toZerologLevel(lvl log.LoggerLevel) zerolog.Level {
	switch lvl {
	case log.DebugLevel:
		return zerolog.DebugLevel
	case log.ErrorLevel:
		return zerolog.ErrorLevel
	case log.InfoLevel:
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *logger) Level(lvl log.LoggerLevel) log.Logger {
	return &logger{zl: l.zl, evt: l.zl.WithLevel(toZerologLevel(lvl))}
}

func (l *logger) Field(k string, v any) log.Logger {
	l.evt = l.evt.Interface(k, v)
	return l
}

func (l *logger) Fields(data map[string]any) log.Logger {
	l.evt = l.evt.Fields(data)
	return l
}

func (l *logger) Error(err error) log.Logger {
	l.evt = l.evt.Err(err)
	return l
}

func (l *logger) Message(msg string) {
	l.evt.Msg(msg)
}

func (l *logger) Messagef(format string, v ...any) {
	l.evt.Msgf(format, v...)
}

var (
	_ log.Factory = (*factory)(nil)
	_ log.Logger  = (*logger)(nil)
)
