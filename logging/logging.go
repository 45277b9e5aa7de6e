// Package logging builds the zap.Logger used by cmd/g2p, following the
// same zap.NewProductionConfig()/zap.NewDevelopmentConfig() bootstrap
// split cobra-based CLIs in this codebase use: structured JSON in
// normal operation, human-readable console output with debug level
// under --verbose.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger for CLI use. verbose switches to a
// development config (console encoding, debug level, caller info);
// otherwise a production config (JSON encoding, info level) is used.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return cfg.Build()
}

// Nop returns a logger that discards everything, used as the default
// before PersistentPreRunE has run (e.g. inside early flag validation).
func Nop() *zap.Logger {
	return zap.NewNop()
}
