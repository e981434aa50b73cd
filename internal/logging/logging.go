// Package logging builds the CLI's zap logger. Loggers are constructed per
// run and passed down explicitly; nothing in this module logs through a
// package global.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a console-encoded logger writing to stderr, keeping stdout
// clean for rendered reports. Debug mode uses zap's development config so
// per-file diagnostics show up; otherwise the level is capped at warn.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
