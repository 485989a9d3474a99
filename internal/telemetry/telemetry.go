// Package telemetry wraps the process-wide structured logger used to
// report run progress and errors outside the progress snapshot stream.
package telemetry

import "go.uber.org/zap"

var logger *zap.Logger

// Init sets up the process-wide logger. prod selects zap's production
// (JSON, sampled) config over its development (console, verbose) config.
// Calling Init more than once is a no-op.
func Init(prod bool) error {
	if logger != nil {
		return nil
	}
	var err error
	if prod {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	return err
}

// L returns the process-wide logger. It panics if Init has not been called,
// since logging before configuration is a programming error, not a runtime
// condition callers should handle.
func L() *zap.Logger {
	if logger == nil {
		panic("telemetry: not initialized")
	}
	return logger
}
