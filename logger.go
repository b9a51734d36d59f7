// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envflag

import (
	"os"

	"github.com/rs/zerolog"
)

// logger emits the package's diagnostics: validation failures, convenience
// layer fallbacks, and the fatal not-initialized abort. Global zerolog state
// is deliberately left untouched so the host application keeps control of
// levels and output.
var logger = zerolog.New(os.Stderr).With().
	Str("role", "envflag").
	Timestamp().
	Logger()

// SetLogger replaces the package logger, letting the application route
// envflag diagnostics through its own zerolog pipeline. Call it before Init
// and before queries from other goroutines.
func SetLogger(l zerolog.Logger) {
	logger = l
}
