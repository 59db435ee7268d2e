// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// All output goes to stderr by default; stdout belongs to the CONSOLE
// output channel.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Debug("Cleaned input", zap.Int("kept", len(cleaned)))
//	logger.Error("Run failed", zap.Error(err))
package logging
