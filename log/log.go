// SPDX-License-Identifier: MIT

// Package log is a thin, config-driven facade over zerolog, shared by the whole module.
package log

import (
	"io"
	"os"
	"strings"
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/otpkit/otpkit/config"
)

// .
var (
	//nolint:gochecknoglobals // One logger for the whole app.
	logger zerolog.Logger
)

//nolint:gochecknoinits // The logger is global, so its initialization can be done in an init.
func init() {
	var appCfg cfg
	config.MustLoadFromKey("logger", &appCfg)

	zerolog.DisableSampling(true)
	zerolog.InterfaceMarshalFunc = json.Marshal
	zerolog.TimeFieldFormat = stdlibtime.RFC3339Nano
	zerolog.TimestampFunc = func() stdlibtime.Time {
		return stdlibtime.Now().UTC()
	}

	var logWriter io.Writer = os.Stderr
	if !strings.EqualFold(appCfg.Encoder, "json") {
		logWriter = &zerolog.ConsoleWriter{Out: logWriter, TimeFormat: stdlibtime.RFC3339Nano}
	}
	level, err := zerolog.ParseLevel(appCfg.Level)
	if err != nil {
		panic(errors.Wrapf(err, "invalid logger level %q", appCfg.Level))
	}
	logger = zerolog.New(logWriter).With().Timestamp().Logger().Level(level)
}

func Error(err error, fields ...any) {
	if err == nil {
		return
	}
	event := logger.Err(err)
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Send()
}

func Debug(msg string, fields ...any) {
	event := logger.Debug()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func Info(msg string, fields ...any) {
	event := logger.Info()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func Warn(msg string, fields ...any) {
	event := logger.Warn()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

// Panic is a no-op on nil, which lets `log.Panic(err)` replace the usual
// `if err != nil { panic(err) }` dance on must-succeed paths.
func Panic(anything any, fields ...any) {
	if anything == nil {
		return
	}
	if err, isErr := anything.(error); isErr && err == nil {
		return
	}
	event := logger.Panic()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	switch obj := anything.(type) {
	case error:
		event.Err(obj).Send()
	case string:
		event.Err(errors.New(obj)).Send()
	default:
		event.Send()
	}
}
