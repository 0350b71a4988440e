// Package logging provides a minimal logging facade for the psa wrapper.
//
// Package psa reports exactly two kinds of diagnostic records through it: a
// native status code that the active contract does not recognise, and a
// status that has no code in the active contract. Neither is an error for the
// caller; both mean the typed layer coarsened a result to GenericError.
//
// # Backends
//
//	// slog, using slog.Default()
//	logger := logging.New(nil)
//
//	// zap
//	z, _ := zap.NewProduction()
//	logger := logging.NewZap(z)
//
//	// from configuration
//	logger, err := logging.Build(logging.Options{Backend: "zap", Format: "json"}, os.Stderr)
//
// Install the logger with psa.SetLogger.
//
// # Silencing
//
// Options.Level "off" builds a Logger that discards every record:
//
//	logger, _ := logging.Build(logging.Options{Level: logging.LevelOff}, nil)
package logging
